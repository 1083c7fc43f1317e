package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyOwnedBy scopes a query to one tenant.
type CompanyOwnedBy struct {
	CompanyID uuid.UUID
}

func (s CompanyOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("company_id = ?", s.CompanyID)
}

// ActiveAssets filters software assets to active status.
type ActiveAssets struct{}

func (s ActiveAssets) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", "active")
}

// ByCatalogID filters by feature-catalog reference.
type ByCatalogID struct {
	CatalogID uuid.UUID
}

func (s ByCatalogID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("catalog_id = ?", s.CatalogID)
}

// ByRunID filters recommendations by the analysis run that produced them.
type ByRunID struct {
	RunID uuid.UUID
}

func (s ByRunID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("run_id = ?", s.RunID)
}

// ByStatus filters on a status column.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
