// Repository interface for a company's software portfolio
package contract

import (
	"context"

	"prism-spend-be/internal/entity"
	"prism-spend-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SoftwareAssetRepository interface {
	Create(ctx context.Context, asset *entity.SoftwareAsset) error
	Update(ctx context.Context, asset *entity.SoftwareAsset) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SoftwareAsset, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SoftwareAsset, error)
	CountActive(ctx context.Context, companyId uuid.UUID) (int64, error)
}
