// Implementation of RecommendationRepository
package implementation

import (
	"context"
	"errors"
	"time"

	"prism-spend-be/internal/entity"
	"prism-spend-be/internal/mapper"
	"prism-spend-be/internal/model"
	"prism-spend-be/internal/repository/contract"
	"prism-spend-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecommendationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RecommendationMapper
}

func NewRecommendationRepository(db *gorm.DB) contract.RecommendationRepository {
	return &RecommendationRepositoryImpl{
		db:     db,
		mapper: mapper.NewRecommendationMapper(),
	}
}

func (r *RecommendationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RecommendationRepositoryImpl) Create(ctx context.Context, rec *entity.ConsolidationRecommendation) error {
	m := r.mapper.ToModel(rec)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*rec = *r.mapper.ToEntity(m)
	return nil
}

func (r *RecommendationRepositoryImpl) CreateBatch(ctx context.Context, recs []*entity.ConsolidationRecommendation) error {
	for _, rec := range recs {
		if err := r.Create(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

func (r *RecommendationRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RecommendationStatus) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&model.ConsolidationRecommendation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": string(status), "updated_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RecommendationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ConsolidationRecommendation, error) {
	var m model.ConsolidationRecommendation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RecommendationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConsolidationRecommendation, error) {
	var models []*model.ConsolidationRecommendation
	query := r.applySpecifications(r.db.WithContext(ctx).Order("estimated_savings DESC, category ASC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
