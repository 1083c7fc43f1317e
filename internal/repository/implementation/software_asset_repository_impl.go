// Implementation of SoftwareAssetRepository
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

type SoftwareAssetRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SoftwareAssetMapper
}

func NewSoftwareAssetRepository(db *gorm.DB) contract.SoftwareAssetRepository {
	return &SoftwareAssetRepositoryImpl{
		db:     db,
		mapper: mapper.NewSoftwareAssetMapper(),
	}
}

func (r *SoftwareAssetRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SoftwareAssetRepositoryImpl) Create(ctx context.Context, asset *entity.SoftwareAsset) error {
	m := r.mapper.ToModel(asset)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*asset = *r.mapper.ToEntity(m)
	return nil
}

func (r *SoftwareAssetRepositoryImpl) Update(ctx context.Context, asset *entity.SoftwareAsset) error {
	m := r.mapper.ToModel(asset)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*asset = *r.mapper.ToEntity(m)
	return nil
}

func (r *SoftwareAssetRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SoftwareAsset{}, id).Error
}

func (r *SoftwareAssetRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SoftwareAsset, error) {
	var m model.SoftwareAsset
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SoftwareAssetRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SoftwareAsset, error) {
	var models []*model.SoftwareAsset
	query := r.applySpecifications(r.db.WithContext(ctx).Order("name ASC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SoftwareAssetRepositoryImpl) CountActive(ctx context.Context, companyId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SoftwareAsset{}).
		Where("company_id = ? AND status = ?", companyId, "active").
		Count(&count).Error
	return count, err
}
