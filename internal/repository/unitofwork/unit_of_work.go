package unitofwork

import (
	"context"

	"prism-spend-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SoftwareAssetRepository() contract.SoftwareAssetRepository
	CatalogRepository() contract.CatalogRepository
	AnalysisRunRepository() contract.AnalysisRunRepository
	RecommendationRepository() contract.RecommendationRepository
	SoftwareEmbeddingRepository() contract.SoftwareEmbeddingRepository
}
