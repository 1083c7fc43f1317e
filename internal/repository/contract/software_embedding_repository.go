package contract

import (
	"context"

	"prism-spend-be/internal/entity"

	"github.com/google/uuid"
)

type SoftwareEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *entity.SoftwareEmbedding) error
	DeleteByCatalogId(ctx context.Context, catalogId uuid.UUID) error
	// SearchSimilar returns catalog embeddings ordered by cosine distance
	// to the query vector, excluding the given catalog entry.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, excludeCatalogId uuid.UUID) ([]*entity.SoftwareEmbedding, error)
}
