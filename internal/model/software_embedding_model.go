package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type SoftwareEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CatalogId      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Document       string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"` // nomic-embed-text dimensions
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      *time.Time      `gorm:"autoUpdateTime"`
}

func (SoftwareEmbedding) TableName() string {
	return "software_embeddings"
}
