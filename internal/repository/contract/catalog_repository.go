// Repository interface for the master feature catalog
package contract

import (
	"context"

	"prism-spend-be/internal/entity"
	"prism-spend-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CatalogRepository interface {
	Create(ctx context.Context, product *entity.CatalogProduct) error
	Update(ctx context.Context, product *entity.CatalogProduct) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CatalogProduct, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CatalogProduct, error)
	FindByName(ctx context.Context, name string) (*entity.CatalogProduct, error)

	// Feature set access. GetFeatureSet is the lookup the overlap engine
	// depends on; it returns an empty set (not an error) for a catalog
	// entry with no features yet.
	GetFeatureSet(ctx context.Context, catalogId uuid.UUID) (*entity.FeatureSet, error)
	ReplaceFeatures(ctx context.Context, catalogId uuid.UUID, features []entity.CatalogFeature) error
	AddFeature(ctx context.Context, feature *entity.CatalogFeature) error
}
