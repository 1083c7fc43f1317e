package service

import (
	"context"
	"errors"
	"time"

	"prism-spend-be/internal/dto"
	"prism-spend-be/internal/entity"
	"prism-spend-be/internal/repository/specification"
	"prism-spend-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrSoftwareNotFound = errors.New("software asset not found")

type ISoftwareService interface {
	Create(ctx context.Context, companyId uuid.UUID, req *dto.CreateSoftwareRequest) (*dto.CreateSoftwareResponse, error)
	Show(ctx context.Context, companyId, id uuid.UUID) (*dto.ShowSoftwareResponse, error)
	List(ctx context.Context, companyId uuid.UUID) ([]*dto.ShowSoftwareResponse, error)
	Update(ctx context.Context, companyId uuid.UUID, req *dto.UpdateSoftwareRequest) error
	Delete(ctx context.Context, companyId, id uuid.UUID) error
}

type softwareService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSoftwareService(uowFactory unitofwork.RepositoryFactory) ISoftwareService {
	return &softwareService{
		uowFactory: uowFactory,
	}
}

func (s *softwareService) Create(ctx context.Context, companyId uuid.UUID, req *dto.CreateSoftwareRequest) (*dto.CreateSoftwareResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	asset := entity.SoftwareAsset{
		Id:              uuid.New(),
		CompanyId:       companyId,
		Name:            req.Name,
		VendorName:      req.VendorName,
		Category:        entity.ParseCategory(req.Category),
		AnnualCost:      req.AnnualCost,
		LicenseCount:    req.LicenseCount,
		UtilizationRate: req.UtilizationRate,
		Status:          entity.AssetStatusActive,
		CatalogId:       req.CatalogId,
		CreatedAt:       time.Now(),
	}

	if err := uow.SoftwareAssetRepository().Create(ctx, &asset); err != nil {
		return nil, err
	}
	return &dto.CreateSoftwareResponse{Id: asset.Id}, nil
}

func (s *softwareService) Show(ctx context.Context, companyId, id uuid.UUID) (*dto.ShowSoftwareResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	asset, err := uow.SoftwareAssetRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, ErrSoftwareNotFound
	}
	return assetToResponse(asset), nil
}

func (s *softwareService) List(ctx context.Context, companyId uuid.UUID) ([]*dto.ShowSoftwareResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	assets, err := uow.SoftwareAssetRepository().FindAll(ctx,
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ShowSoftwareResponse, len(assets))
	for i, asset := range assets {
		res[i] = assetToResponse(asset)
	}
	return res, nil
}

func (s *softwareService) Update(ctx context.Context, companyId uuid.UUID, req *dto.UpdateSoftwareRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SoftwareAssetRepository()

	asset, err := repo.FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return err
	}
	if asset == nil {
		return ErrSoftwareNotFound
	}

	asset.Name = req.Name
	asset.VendorName = req.VendorName
	asset.Category = entity.ParseCategory(req.Category)
	asset.AnnualCost = req.AnnualCost
	asset.LicenseCount = req.LicenseCount
	asset.UtilizationRate = req.UtilizationRate
	asset.CatalogId = req.CatalogId
	if req.Status != "" {
		asset.Status = entity.AssetStatus(req.Status)
	}
	now := time.Now()
	asset.UpdatedAt = &now

	return repo.Update(ctx, asset)
}

func (s *softwareService) Delete(ctx context.Context, companyId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SoftwareAssetRepository()

	asset, err := repo.FindOne(ctx,
		specification.ByID{ID: id},
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return err
	}
	if asset == nil {
		return ErrSoftwareNotFound
	}
	return repo.Delete(ctx, id)
}

func assetToResponse(asset *entity.SoftwareAsset) *dto.ShowSoftwareResponse {
	return &dto.ShowSoftwareResponse{
		Id:              asset.Id,
		Name:            asset.Name,
		VendorName:      asset.VendorName,
		Category:        string(asset.Category),
		AnnualCost:      asset.AnnualCost,
		LicenseCount:    asset.LicenseCount,
		UtilizationRate: asset.UtilizationRate,
		Status:          string(asset.Status),
		CatalogId:       asset.CatalogId,
		CreatedAt:       asset.CreatedAt,
		UpdatedAt:       asset.UpdatedAt,
	}
}
