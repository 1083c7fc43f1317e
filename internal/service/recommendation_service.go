package service

import (
	"context"
	"errors"
	"log"

	"prism-spend-be/internal/dto"
	"prism-spend-be/internal/entity"
	"prism-spend-be/internal/repository/specification"
	"prism-spend-be/internal/repository/unitofwork"
	"prism-spend-be/pkg/events"
	pktNats "prism-spend-be/pkg/nats"

	"github.com/google/uuid"
)

var ErrRecommendationNotFound = errors.New("recommendation not found")

type IRecommendationService interface {
	List(ctx context.Context, companyId uuid.UUID) ([]*dto.ShowRecommendationResponse, error)
	UpdateStatus(ctx context.Context, companyId uuid.UUID, req *dto.UpdateRecommendationRequest) error
}

type recommendationService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewRecommendationService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IRecommendationService {
	return &recommendationService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (s *recommendationService) List(ctx context.Context, companyId uuid.UUID) ([]*dto.ShowRecommendationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	recs, err := uow.RecommendationRepository().FindAll(ctx,
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ShowRecommendationResponse, len(recs))
	for i, rec := range recs {
		res[i] = &dto.ShowRecommendationResponse{
			Id:               rec.Id,
			RunId:            rec.RunId,
			Category:         string(rec.Category),
			KeepProduct:      rec.KeepProduct,
			RetireProducts:   rec.RetireProducts,
			EstimatedSavings: rec.EstimatedSavings,
			Status:           string(rec.Status),
			CreatedAt:        rec.CreatedAt,
			UpdatedAt:        rec.UpdatedAt,
		}
	}
	return res, nil
}

func (s *recommendationService) UpdateStatus(ctx context.Context, companyId uuid.UUID, req *dto.UpdateRecommendationRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.RecommendationRepository()

	rec, err := repo.FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrRecommendationNotFound
	}

	status := entity.RecommendationStatus(req.Status)
	if err := repo.UpdateStatus(ctx, req.Id, status); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewRecommendationUpdatedEvent(companyId, req.Id, req.Status)); err != nil {
			log.Printf("[WARN] Failed to publish recommendation updated event: %v", err)
		}
	}
	return nil
}
