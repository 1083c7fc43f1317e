// Implementation of CatalogRepository
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

type CatalogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewCatalogRepository(db *gorm.DB) contract.CatalogRepository {
	return &CatalogRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *CatalogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CatalogRepositoryImpl) Create(ctx context.Context, product *entity.CatalogProduct) error {
	m := r.mapper.ToModel(product)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*product = *r.mapper.ToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) Update(ctx context.Context, product *entity.CatalogProduct) error {
	m := r.mapper.ToModel(product)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*product = *r.mapper.ToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("catalog_id = ?", id).Delete(&model.CatalogFeature{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&model.CatalogProduct{}, id).Error
}

func (r *CatalogRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CatalogProduct, error) {
	var m model.CatalogProduct
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CatalogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CatalogProduct, error) {
	var models []*model.CatalogProduct
	query := r.applySpecifications(r.db.WithContext(ctx).Order("name ASC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CatalogRepositoryImpl) FindByName(ctx context.Context, name string) (*entity.CatalogProduct, error) {
	var m model.CatalogProduct
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CatalogRepositoryImpl) GetFeatureSet(ctx context.Context, catalogId uuid.UUID) (*entity.FeatureSet, error) {
	var models []*model.CatalogFeature
	err := r.db.WithContext(ctx).
		Where("catalog_id = ?", catalogId).
		Order("category ASC, name ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return &entity.FeatureSet{
		CatalogId: catalogId,
		Features:  r.mapper.FeaturesToEntities(models),
	}, nil
}

func (r *CatalogRepositoryImpl) ReplaceFeatures(ctx context.Context, catalogId uuid.UUID, features []entity.CatalogFeature) error {
	if err := r.db.WithContext(ctx).Where("catalog_id = ?", catalogId).Delete(&model.CatalogFeature{}).Error; err != nil {
		return err
	}
	for i := range features {
		features[i].CatalogId = catalogId
		m := r.mapper.FeatureToModel(&features[i])
		if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *CatalogRepositoryImpl) AddFeature(ctx context.Context, feature *entity.CatalogFeature) error {
	m := r.mapper.FeatureToModel(feature)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*feature = *r.mapper.FeatureToEntity(m)
	return nil
}
