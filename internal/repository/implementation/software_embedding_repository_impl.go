// Implementation of SoftwareEmbeddingRepository (pgvector similarity)
package implementation

import (
	"context"

	"prism-spend-be/internal/entity"
	"prism-spend-be/internal/mapper"
	"prism-spend-be/internal/model"
	"prism-spend-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SoftwareEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SoftwareEmbeddingMapper
}

func NewSoftwareEmbeddingRepository(db *gorm.DB) contract.SoftwareEmbeddingRepository {
	return &SoftwareEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewSoftwareEmbeddingMapper(),
	}
}

func (r *SoftwareEmbeddingRepositoryImpl) Upsert(ctx context.Context, embedding *entity.SoftwareEmbedding) error {
	m := r.mapper.ToModel(embedding)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "catalog_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "embedding_value", "updated_at"}),
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *SoftwareEmbeddingRepositoryImpl) DeleteByCatalogId(ctx context.Context, catalogId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("catalog_id = ?", catalogId).Delete(&model.SoftwareEmbedding{}).Error
}

func (r *SoftwareEmbeddingRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int, excludeCatalogId uuid.UUID) ([]*entity.SoftwareEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}
	var models []*model.SoftwareEmbedding

	// pgvector cosine distance: embedding_value <=> query
	err := r.db.WithContext(ctx).
		Where("catalog_id <> ?", excludeCatalogId).
		Order(gorm.Expr("embedding_value <=> ?", pgvector.NewVector(embedding))).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	entities := make([]*entity.SoftwareEmbedding, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
