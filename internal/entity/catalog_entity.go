// Domain entities for the feature catalog
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CatalogProduct is one entry in the master software catalog. Multiple
// SoftwareAssets (even across companies) share one catalog entry, and with
// it one feature set, by reference.
type CatalogProduct struct {
	Id          uuid.UUID
	Name        string
	VendorName  string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// CatalogFeature is a single named capability of a catalog product,
// optionally tagged with a feature category ("Task Management", ...).
type CatalogFeature struct {
	Id        uuid.UUID
	CatalogId uuid.UUID
	Name      string
	Category  string
	CreatedAt time.Time
}

// FeatureSet is the set of features attached to one catalog entry, as
// consumed by the overlap scorer.
type FeatureSet struct {
	CatalogId uuid.UUID
	Features  []CatalogFeature
}

func (fs *FeatureSet) IsEmpty() bool {
	return fs == nil || len(fs.Features) == 0
}

func (fs *FeatureSet) Size() int {
	if fs == nil {
		return 0
	}
	return len(fs.Features)
}
