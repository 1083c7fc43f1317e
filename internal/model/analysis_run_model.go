// GORM model for analysis runs; the completed result is stored as one
// JSONB payload rather than exploded into rows
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AnalysisRun struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status       string         `gorm:"type:varchar(20);not null;index"`
	Stage        string         `gorm:"type:varchar(100)"`
	Percent      int            `gorm:"default:0"`
	Result       datatypes.JSON `gorm:"type:jsonb"`
	ErrorSummary string         `gorm:"type:text"`
	StartedAt    time.Time      `gorm:"not null"`
	FinishedAt   *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (AnalysisRun) TableName() string {
	return "analysis_runs"
}
