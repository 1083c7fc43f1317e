package service

import (
	"context"
	"encoding/json"
	"log"

	"prism-spend-be/internal/dto"
	"prism-spend-be/internal/entity"
	"prism-spend-be/internal/repository/unitofwork"
	"prism-spend-be/pkg/events"
	pktNats "prism-spend-be/pkg/nats"
	"prism-spend-be/pkg/redundancy"
	"prism-spend-be/pkg/redundancy/progress"

	"github.com/google/uuid"
)

type IRedundancyService interface {
	// Trigger validates the portfolio, registers the run and dispatches the
	// job. It returns immediately; the pipeline runs on the worker.
	Trigger(ctx context.Context, companyId uuid.UUID) (*dto.TriggerAnalysisResponse, error)
	GetProgress(ctx context.Context, companyId uuid.UUID) (*dto.AnalysisProgressResponse, error)
	Cancel(ctx context.Context, companyId uuid.UUID) (*dto.AnalysisProgressResponse, error)
	GetResult(ctx context.Context, companyId uuid.UUID) (*dto.AnalysisResultResponse, error)
}

type redundancyService struct {
	uowFactory       unitofwork.RepositoryFactory
	tracker          *progress.Tracker
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewRedundancyService(
	uowFactory unitofwork.RepositoryFactory,
	tracker *progress.Tracker,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IRedundancyService {
	return &redundancyService{
		uowFactory:       uowFactory,
		tracker:          tracker,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func (s *redundancyService) Trigger(ctx context.Context, companyId uuid.UUID) (*dto.TriggerAnalysisResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Re-validate on the server even though the UI disables the trigger
	// below two assets. No run is created when this fails.
	count, err := uow.SoftwareAssetRepository().CountActive(ctx, companyId)
	if err != nil {
		return nil, err
	}
	if count < 2 {
		return nil, redundancy.ErrInsufficientData
	}

	runId := uuid.New()
	record, err := s.tracker.Start(companyId, runId)
	if err != nil {
		return nil, err
	}

	run := entity.AnalysisRun{
		Id:        runId,
		CompanyId: companyId,
		Status:    entity.RunStatusQueued,
		Stage:     record.Stage,
		StartedAt: record.StartedAt,
	}
	if err := uow.AnalysisRunRepository().Create(ctx, &run); err != nil {
		s.tracker.Clear(companyId)
		return nil, err
	}

	job, err := json.Marshal(dto.AnalysisJobMessage{RunId: runId, CompanyId: companyId})
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, job); err != nil {
		s.tracker.Fail(companyId, "failed to dispatch analysis job")
		return nil, err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewAnalysisStartedEvent(companyId, runId)); err != nil {
			log.Printf("[WARN] Failed to publish analysis started event: %v", err)
		}
	}

	return &dto.TriggerAnalysisResponse{
		RunId:  runId,
		Status: string(entity.RunStatusQueued),
	}, nil
}

func (s *redundancyService) GetProgress(ctx context.Context, companyId uuid.UUID) (*dto.AnalysisProgressResponse, error) {
	record, ok := s.tracker.Get(companyId)
	if !ok {
		return nil, redundancy.ErrRunNotFound
	}
	return progressToResponse(record), nil
}

func (s *redundancyService) Cancel(ctx context.Context, companyId uuid.UUID) (*dto.AnalysisProgressResponse, error) {
	record, err := s.tracker.RequestCancel(companyId)
	if err != nil {
		return nil, err
	}
	return progressToResponse(record), nil
}

func (s *redundancyService) GetResult(ctx context.Context, companyId uuid.UUID) (*dto.AnalysisResultResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	run, err := uow.AnalysisRunRepository().FindLastCompleted(ctx, companyId)
	if err != nil {
		return nil, err
	}
	if run == nil || run.Result == nil {
		return nil, redundancy.ErrRunNotFound
	}

	return &dto.AnalysisResultResponse{
		RunId:               run.Id,
		Status:              string(run.Status),
		Overlaps:            run.Result.Overlaps,
		ComparisonMatrix:    run.Result.ComparisonMatrix,
		Recommendations:     run.Result.Recommendations,
		TotalRedundancyCost: run.Result.TotalRedundancyCost,
		AnalysisDate:        run.Result.AnalysisDate,
	}, nil
}

func progressToResponse(record *progress.Record) *dto.AnalysisProgressResponse {
	return &dto.AnalysisProgressResponse{
		RunId:                 record.RunId,
		Status:                string(record.Status),
		Stage:                 record.Stage,
		Percent:               record.Percent,
		Error:                 record.Error,
		CancellationRequested: record.CancellationRequested,
	}
}
