package entity

import (
	"time"

	"github.com/google/uuid"
)

// SoftwareEmbedding is the vector representation of a catalog product's
// description and feature list, used for alternative-software matching.
type SoftwareEmbedding struct {
	Id             uuid.UUID
	CatalogId      uuid.UUID
	Document       string
	EmbeddingValue []float32
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
