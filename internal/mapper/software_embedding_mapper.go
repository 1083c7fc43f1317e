package mapper

import (
	"prism-spend-be/internal/entity"
	"prism-spend-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type SoftwareEmbeddingMapper struct{}

func NewSoftwareEmbeddingMapper() *SoftwareEmbeddingMapper {
	return &SoftwareEmbeddingMapper{}
}

func (m *SoftwareEmbeddingMapper) ToEntity(mdl *model.SoftwareEmbedding) *entity.SoftwareEmbedding {
	if mdl == nil {
		return nil
	}
	return &entity.SoftwareEmbedding{
		Id:             mdl.Id,
		CatalogId:      mdl.CatalogId,
		Document:       mdl.Document,
		EmbeddingValue: mdl.EmbeddingValue.Slice(),
		CreatedAt:      mdl.CreatedAt,
		UpdatedAt:      mdl.UpdatedAt,
	}
}

func (m *SoftwareEmbeddingMapper) ToModel(e *entity.SoftwareEmbedding) *model.SoftwareEmbedding {
	if e == nil {
		return nil
	}
	return &model.SoftwareEmbedding{
		Id:             e.Id,
		CatalogId:      e.CatalogId,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
