// Mapper for SoftwareAsset entity <-> model conversion
package mapper

import (
	"prism-spend-be/internal/entity"
	"prism-spend-be/internal/model"
)

type SoftwareAssetMapper struct{}

func NewSoftwareAssetMapper() *SoftwareAssetMapper {
	return &SoftwareAssetMapper{}
}

func (m *SoftwareAssetMapper) ToEntity(model *model.SoftwareAsset) *entity.SoftwareAsset {
	if model == nil {
		return nil
	}
	return &entity.SoftwareAsset{
		Id:              model.Id,
		CompanyId:       model.CompanyId,
		Name:            model.Name,
		VendorName:      model.VendorName,
		Category:        entity.ParseCategory(model.Category),
		AnnualCost:      model.AnnualCost,
		LicenseCount:    model.LicenseCount,
		UtilizationRate: model.UtilizationRate,
		Status:          entity.AssetStatus(model.Status),
		CatalogId:       model.CatalogId,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func (m *SoftwareAssetMapper) ToModel(entity *entity.SoftwareAsset) *model.SoftwareAsset {
	if entity == nil {
		return nil
	}
	return &model.SoftwareAsset{
		Id:              entity.Id,
		CompanyId:       entity.CompanyId,
		Name:            entity.Name,
		VendorName:      entity.VendorName,
		Category:        string(entity.Category),
		AnnualCost:      entity.AnnualCost,
		LicenseCount:    entity.LicenseCount,
		UtilizationRate: entity.UtilizationRate,
		Status:          string(entity.Status),
		CatalogId:       entity.CatalogId,
		CreatedAt:       entity.CreatedAt,
		UpdatedAt:       entity.UpdatedAt,
	}
}

func (m *SoftwareAssetMapper) ToEntities(models []*model.SoftwareAsset) []*entity.SoftwareAsset {
	entities := make([]*entity.SoftwareAsset, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
