package service

import (
	"context"
	"errors"
	"fmt"

	"prism-spend-be/internal/dto"
	"prism-spend-be/internal/repository/specification"
	"prism-spend-be/internal/repository/unitofwork"
	"prism-spend-be/pkg/embedding"

	"github.com/google/uuid"
)

var ErrNoCatalogLink = errors.New("software asset is not linked to a catalog entry")

// IAlternativeService suggests catalog products semantically close to an
// asset the company already pays for.
type IAlternativeService interface {
	Alternatives(ctx context.Context, companyId, softwareId uuid.UUID, limit int) ([]*dto.AlternativeResponse, error)
}

type alternativeService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewAlternativeService(uowFactory unitofwork.RepositoryFactory, embeddingProvider embedding.EmbeddingProvider) IAlternativeService {
	return &alternativeService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (s *alternativeService) Alternatives(ctx context.Context, companyId, softwareId uuid.UUID, limit int) ([]*dto.AlternativeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	asset, err := uow.SoftwareAssetRepository().FindOne(ctx,
		specification.ByID{ID: softwareId},
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, ErrSoftwareNotFound
	}
	if asset.CatalogId == nil {
		return nil, ErrNoCatalogLink
	}

	catalogRepo := uow.CatalogRepository()
	product, err := catalogRepo.FindOne(ctx, specification.ByID{ID: *asset.CatalogId})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrCatalogNotFound
	}

	query := fmt.Sprintf("%s by %s. %s", product.Name, product.VendorName, product.Description)
	res, err := s.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	matches, err := uow.SoftwareEmbeddingRepository().SearchSimilar(ctx, res.Embedding.Values, limit, *asset.CatalogId)
	if err != nil {
		return nil, err
	}

	alternatives := make([]*dto.AlternativeResponse, 0, len(matches))
	for _, m := range matches {
		alt, err := catalogRepo.FindOne(ctx, specification.ByID{ID: m.CatalogId})
		if err != nil {
			return nil, err
		}
		if alt == nil {
			continue
		}
		alternatives = append(alternatives, &dto.AlternativeResponse{
			CatalogId:  alt.Id,
			Name:       alt.Name,
			VendorName: alt.VendorName,
		})
	}
	return alternatives, nil
}
