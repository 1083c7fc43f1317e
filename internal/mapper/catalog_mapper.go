// Mapper for catalog product / feature entity <-> model conversion
package mapper

import (
	"prism-spend-be/internal/entity"
	"prism-spend-be/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) ToEntity(model *model.CatalogProduct) *entity.CatalogProduct {
	if model == nil {
		return nil
	}
	return &entity.CatalogProduct{
		Id:          model.Id,
		Name:        model.Name,
		VendorName:  model.VendorName,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func (m *CatalogMapper) ToModel(entity *entity.CatalogProduct) *model.CatalogProduct {
	if entity == nil {
		return nil
	}
	return &model.CatalogProduct{
		Id:          entity.Id,
		Name:        entity.Name,
		VendorName:  entity.VendorName,
		Description: entity.Description,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func (m *CatalogMapper) ToEntities(models []*model.CatalogProduct) []*entity.CatalogProduct {
	entities := make([]*entity.CatalogProduct, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

func (m *CatalogMapper) FeatureToEntity(model *model.CatalogFeature) *entity.CatalogFeature {
	if model == nil {
		return nil
	}
	return &entity.CatalogFeature{
		Id:        model.Id,
		CatalogId: model.CatalogId,
		Name:      model.Name,
		Category:  model.Category,
		CreatedAt: model.CreatedAt,
	}
}

func (m *CatalogMapper) FeatureToModel(entity *entity.CatalogFeature) *model.CatalogFeature {
	if entity == nil {
		return nil
	}
	return &model.CatalogFeature{
		Id:        entity.Id,
		CatalogId: entity.CatalogId,
		Name:      entity.Name,
		Category:  entity.Category,
		CreatedAt: entity.CreatedAt,
	}
}

func (m *CatalogMapper) FeaturesToEntities(models []*model.CatalogFeature) []entity.CatalogFeature {
	entities := make([]entity.CatalogFeature, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, *m.FeatureToEntity(mdl))
	}
	return entities
}
