// GORM models for the master software catalog and its features
package model

import (
	"time"

	"github.com/google/uuid"
)

type CatalogProduct struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	VendorName  string     `gorm:"type:varchar(255)"`
	Description string     `gorm:"type:text"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime"`
}

func (CatalogProduct) TableName() string {
	return "software_catalog"
}

type CatalogFeature struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CatalogId uuid.UUID `gorm:"type:uuid;not null;index:idx_catalog_feature,unique"`
	Name      string    `gorm:"type:varchar(255);not null;index:idx_catalog_feature,unique"`
	Category  string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (CatalogFeature) TableName() string {
	return "catalog_features"
}
