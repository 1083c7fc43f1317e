package contract

import (
	"context"

	"prism-spend-be/internal/entity"
	"prism-spend-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RecommendationRepository interface {
	Create(ctx context.Context, rec *entity.ConsolidationRecommendation) error
	CreateBatch(ctx context.Context, recs []*entity.ConsolidationRecommendation) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RecommendationStatus) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ConsolidationRecommendation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConsolidationRecommendation, error)
}
