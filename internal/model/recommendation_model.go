// GORM model for consolidation recommendations
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ConsolidationRecommendation struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RunId            uuid.UUID      `gorm:"type:uuid;not null;index"`
	CompanyId        uuid.UUID      `gorm:"type:uuid;not null;index"`
	Category         string         `gorm:"type:varchar(50);not null"`
	KeepProduct      datatypes.JSON `gorm:"type:jsonb;not null"`
	RetireProducts   datatypes.JSON `gorm:"type:jsonb;not null"`
	EstimatedSavings float64        `gorm:"type:numeric(14,2);not null;default:0"`
	Status           string         `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        *time.Time     `gorm:"autoUpdateTime"`
}

func (ConsolidationRecommendation) TableName() string {
	return "consolidation_recommendations"
}
