package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"prism-spend-be/internal/dto"
	"prism-spend-be/internal/entity"
	"prism-spend-be/internal/repository/specification"
	"prism-spend-be/internal/repository/unitofwork"
	"prism-spend-be/pkg/embedding"
	"prism-spend-be/pkg/enrichment"

	"github.com/google/uuid"
)

var ErrCatalogNotFound = errors.New("catalog entry not found")

type ICatalogService interface {
	Create(ctx context.Context, req *dto.CreateCatalogRequest) (*dto.CreateCatalogResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowCatalogResponse, error)
	List(ctx context.Context) ([]*dto.ShowCatalogResponse, error)
	Update(ctx context.Context, req *dto.UpdateCatalogRequest) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Enrich asks the extraction model for the product's feature list,
	// replaces the stored features and refreshes the similarity embedding.
	Enrich(ctx context.Context, id uuid.UUID) (*dto.EnrichCatalogResponse, error)
}

type catalogService struct {
	uowFactory         unitofwork.RepositoryFactory
	enrichmentProvider enrichment.Provider
	embeddingProvider  embedding.EmbeddingProvider
}

func NewCatalogService(
	uowFactory unitofwork.RepositoryFactory,
	enrichmentProvider enrichment.Provider,
	embeddingProvider embedding.EmbeddingProvider,
) ICatalogService {
	return &catalogService{
		uowFactory:         uowFactory,
		enrichmentProvider: enrichmentProvider,
		embeddingProvider:  embeddingProvider,
	}
}

func (s *catalogService) Create(ctx context.Context, req *dto.CreateCatalogRequest) (*dto.CreateCatalogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.CatalogRepository().FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("catalog entry %q already exists", req.Name)
	}

	product := entity.CatalogProduct{
		Id:          uuid.New(),
		Name:        req.Name,
		VendorName:  req.VendorName,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if err := uow.CatalogRepository().Create(ctx, &product); err != nil {
		return nil, err
	}
	return &dto.CreateCatalogResponse{Id: product.Id}, nil
}

func (s *catalogService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowCatalogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CatalogRepository()

	product, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrCatalogNotFound
	}

	featureSet, err := repo.GetFeatureSet(ctx, id)
	if err != nil {
		return nil, err
	}

	res := catalogToResponse(product)
	res.Features = make([]dto.CatalogFeatureResponse, len(featureSet.Features))
	for i, f := range featureSet.Features {
		res.Features[i] = dto.CatalogFeatureResponse{Id: f.Id, Name: f.Name, Category: f.Category}
	}
	return res, nil
}

func (s *catalogService) List(ctx context.Context) ([]*dto.ShowCatalogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	products, err := uow.CatalogRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ShowCatalogResponse, len(products))
	for i, p := range products {
		res[i] = catalogToResponse(p)
	}
	return res, nil
}

func (s *catalogService) Update(ctx context.Context, req *dto.UpdateCatalogRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CatalogRepository()

	product, err := repo.FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if product == nil {
		return ErrCatalogNotFound
	}

	product.Name = req.Name
	product.VendorName = req.VendorName
	product.Description = req.Description
	now := time.Now()
	product.UpdatedAt = &now

	return repo.Update(ctx, product)
}

func (s *catalogService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.SoftwareEmbeddingRepository().DeleteByCatalogId(ctx, id); err != nil {
		return err
	}
	return uow.CatalogRepository().Delete(ctx, id)
}

func (s *catalogService) Enrich(ctx context.Context, id uuid.UUID) (*dto.EnrichCatalogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CatalogRepository()

	product, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrCatalogNotFound
	}

	extracted, err := s.enrichmentProvider.ExtractFeatures(ctx, product.Name, product.VendorName, product.Description)
	if err != nil {
		return nil, fmt.Errorf("feature extraction failed: %w", err)
	}

	features := make([]entity.CatalogFeature, len(extracted))
	for i, f := range extracted {
		features[i] = entity.CatalogFeature{
			Id:        uuid.New(),
			CatalogId: id,
			Name:      f.Name,
			Category:  f.Category,
			CreatedAt: time.Now(),
		}
	}
	if err := repo.ReplaceFeatures(ctx, id, features); err != nil {
		return nil, err
	}

	// Refresh the similarity embedding from the enriched document. Failure
	// here does not undo the enrichment; the embedding can be rebuilt later.
	if err := s.refreshEmbedding(ctx, uow, product, features); err != nil {
		return nil, err
	}

	return &dto.EnrichCatalogResponse{Id: id, FeatureCount: len(features)}, nil
}

func (s *catalogService) refreshEmbedding(ctx context.Context, uow unitofwork.UnitOfWork, product *entity.CatalogProduct, features []entity.CatalogFeature) error {
	document := buildEmbeddingDocument(product, features)

	res, err := s.embeddingProvider.Generate(document, "RETRIEVAL_DOCUMENT")
	if err != nil {
		return fmt.Errorf("embedding generation failed: %w", err)
	}

	emb := entity.SoftwareEmbedding{
		Id:             uuid.New(),
		CatalogId:      product.Id,
		Document:       document,
		EmbeddingValue: res.Embedding.Values,
	}
	return uow.SoftwareEmbeddingRepository().Upsert(ctx, &emb)
}

func buildEmbeddingDocument(product *entity.CatalogProduct, features []entity.CatalogFeature) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s by %s. %s", product.Name, product.VendorName, product.Description)
	if len(features) > 0 {
		sb.WriteString(" Features: ")
		names := make([]string, len(features))
		for i, f := range features {
			names[i] = f.Name
		}
		sb.WriteString(strings.Join(names, ", "))
	}
	return sb.String()
}

func catalogToResponse(product *entity.CatalogProduct) *dto.ShowCatalogResponse {
	return &dto.ShowCatalogResponse{
		Id:          product.Id,
		Name:        product.Name,
		VendorName:  product.VendorName,
		Description: product.Description,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
