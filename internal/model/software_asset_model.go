// GORM model for the software_assets table
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SoftwareAsset struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name            string         `gorm:"type:varchar(255);not null"`
	VendorName      string         `gorm:"type:varchar(255)"`
	Category        string         `gorm:"type:varchar(50);not null;default:'other'"`
	AnnualCost      float64        `gorm:"type:numeric(14,2);not null;default:0"`
	LicenseCount    int            `gorm:"default:0"`
	UtilizationRate float64        `gorm:"type:numeric(5,2);default:0"` // 0-100
	Status          string         `gorm:"type:varchar(20);not null;default:'active';index"`
	CatalogId       *uuid.UUID     `gorm:"type:uuid;index"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       *time.Time     `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (SoftwareAsset) TableName() string {
	return "software_assets"
}
