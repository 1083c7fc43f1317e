// Repository interface for persisted analysis runs
package contract

import (
	"context"

	"prism-spend-be/internal/entity"
	"prism-spend-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AnalysisRunRepository interface {
	Create(ctx context.Context, run *entity.AnalysisRun) error
	Update(ctx context.Context, run *entity.AnalysisRun) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnalysisRun, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AnalysisRun, error)
	// FindLastCompleted returns the most recently finished completed run
	// for a company, or nil when none exists.
	FindLastCompleted(ctx context.Context, companyId uuid.UUID) (*entity.AnalysisRun, error)
}
