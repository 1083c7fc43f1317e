// Mapper for ConsolidationRecommendation entity <-> model conversion
package mapper

import (
	"encoding/json"

	"prism-spend-be/internal/entity"
	"prism-spend-be/internal/model"

	"gorm.io/datatypes"
)

type RecommendationMapper struct{}

func NewRecommendationMapper() *RecommendationMapper {
	return &RecommendationMapper{}
}

func (m *RecommendationMapper) ToEntity(mdl *model.ConsolidationRecommendation) *entity.ConsolidationRecommendation {
	if mdl == nil {
		return nil
	}
	rec := &entity.ConsolidationRecommendation{
		Id:               mdl.Id,
		RunId:            mdl.RunId,
		CompanyId:        mdl.CompanyId,
		Category:         entity.SoftwareCategory(mdl.Category),
		EstimatedSavings: mdl.EstimatedSavings,
		Status:           entity.RecommendationStatus(mdl.Status),
		CreatedAt:        mdl.CreatedAt,
		UpdatedAt:        mdl.UpdatedAt,
	}
	if len(mdl.KeepProduct) > 0 {
		_ = json.Unmarshal(mdl.KeepProduct, &rec.KeepProduct)
	}
	if len(mdl.RetireProducts) > 0 {
		_ = json.Unmarshal(mdl.RetireProducts, &rec.RetireProducts)
	}
	return rec
}

func (m *RecommendationMapper) ToModel(rec *entity.ConsolidationRecommendation) *model.ConsolidationRecommendation {
	if rec == nil {
		return nil
	}
	mdl := &model.ConsolidationRecommendation{
		Id:               rec.Id,
		RunId:            rec.RunId,
		CompanyId:        rec.CompanyId,
		Category:         string(rec.Category),
		EstimatedSavings: rec.EstimatedSavings,
		Status:           string(rec.Status),
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
	if data, err := json.Marshal(rec.KeepProduct); err == nil {
		mdl.KeepProduct = datatypes.JSON(data)
	}
	if data, err := json.Marshal(rec.RetireProducts); err == nil {
		mdl.RetireProducts = datatypes.JSON(data)
	}
	return mdl
}

func (m *RecommendationMapper) ToEntities(models []*model.ConsolidationRecommendation) []*entity.ConsolidationRecommendation {
	entities := make([]*entity.ConsolidationRecommendation, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
