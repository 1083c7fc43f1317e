// Implementation of AnalysisRunRepository
package implementation

import (
	"context"
	"errors"

	"prism-spend-be/internal/entity"
	"prism-spend-be/internal/mapper"
	"prism-spend-be/internal/model"
	"prism-spend-be/internal/repository/contract"
	"prism-spend-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnalysisRunRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnalysisRunMapper
}

func NewAnalysisRunRepository(db *gorm.DB) contract.AnalysisRunRepository {
	return &AnalysisRunRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnalysisRunMapper(),
	}
}

func (r *AnalysisRunRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AnalysisRunRepositoryImpl) Create(ctx context.Context, run *entity.AnalysisRun) error {
	m, err := r.mapper.ToModel(run)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	saved, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*run = *saved
	return nil
}

func (r *AnalysisRunRepositoryImpl) Update(ctx context.Context, run *entity.AnalysisRun) error {
	m, err := r.mapper.ToModel(run)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	saved, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*run = *saved
	return nil
}

func (r *AnalysisRunRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnalysisRun, error) {
	var m model.AnalysisRun
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *AnalysisRunRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AnalysisRun, error) {
	var models []*model.AnalysisRun
	query := r.applySpecifications(r.db.WithContext(ctx).Order("started_at DESC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models)
}

func (r *AnalysisRunRepositoryImpl) FindLastCompleted(ctx context.Context, companyId uuid.UUID) (*entity.AnalysisRun, error) {
	var m model.AnalysisRun
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND status = ?", companyId, string(entity.RunStatusCompleted)).
		Order("finished_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}
