package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"prism-spend-be/internal/dto"
	"prism-spend-be/internal/entity"
	"prism-spend-be/internal/pkg/logger"
	"prism-spend-be/internal/pkg/mailer"
	"prism-spend-be/internal/repository/specification"
	"prism-spend-be/internal/repository/unitofwork"
	"prism-spend-be/internal/websocket"
	"prism-spend-be/pkg/events"
	pktNats "prism-spend-be/pkg/nats"
	"prism-spend-be/pkg/redundancy"
	"prism-spend-be/pkg/redundancy/portfolio"
	"prism-spend-be/pkg/redundancy/progress"
	"prism-spend-be/pkg/redundancy/recommend"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IAnalysisWorkerService consumes dispatched analysis jobs and runs the
// redundancy pipeline end to end, detached from the triggering request.
type IAnalysisWorkerService interface {
	Consume(ctx context.Context) error
}

type analysisWorkerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	tracker        *progress.Tracker
	aggregator     *portfolio.Aggregator
	generator      *recommend.Generator
	hub            *websocket.Hub
	eventPublisher *pktNats.Publisher
	emailService   mailer.IEmailService
	logger         logger.ILogger
	runTimeout     time.Duration
}

func NewAnalysisWorkerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	tracker *progress.Tracker,
	hub *websocket.Hub,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	sysLogger logger.ILogger,
	runTimeout time.Duration,
) IAnalysisWorkerService {
	return &analysisWorkerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		tracker:        tracker,
		aggregator:     portfolio.NewAggregator(),
		generator:      recommend.NewGenerator(),
		hub:            hub,
		eventPublisher: eventPublisher,
		emailService:   emailService,
		logger:         sysLogger,
		runTimeout:     runTimeout,
	}
}

func (ws *analysisWorkerService) Consume(ctx context.Context) error {
	messages, err := ws.pubSub.Subscribe(ctx, ws.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ws.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (ws *analysisWorkerService) processMessage(ctx context.Context, msg *message.Message) {
	var job dto.AnalysisJobMessage
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		log.Printf("[ERROR] Failed to unmarshal analysis job: %v", err)
		msg.Ack() // invalid payloads are not retriable
		return
	}

	ws.logger.Info("AnalysisWorker", "Processing analysis run", map[string]interface{}{
		"run_id":     job.RunId,
		"company_id": job.CompanyId,
	})

	// Errors inside the run never propagate to the dispatcher; they are
	// captured into the run's terminal state.
	ws.runAnalysis(ctx, job)
	msg.Ack()
}

func (ws *analysisWorkerService) runAnalysis(ctx context.Context, job dto.AnalysisJobMessage) {
	runCtx, cancel := context.WithTimeout(ctx, ws.runTimeout)
	defer cancel()

	uow := ws.uowFactory.NewUnitOfWork(runCtx)

	run, err := uow.AnalysisRunRepository().FindOne(runCtx, specification.ByID{ID: job.RunId})
	if err != nil || run == nil {
		ws.logger.Error("AnalysisWorker", "Run row missing", map[string]interface{}{"run_id": job.RunId, "error": err})
		ws.tracker.Fail(job.CompanyId, "analysis run not found")
		return
	}

	assets, err := uow.SoftwareAssetRepository().FindAll(runCtx,
		specification.CompanyOwnedBy{CompanyID: job.CompanyId},
	)
	if err != nil {
		ws.finishFailed(runCtx, uow, run, "failed to load portfolio: "+err.Error())
		return
	}

	ws.advance(job.CompanyId, run, "fetching portfolio", 5)

	result, err := ws.aggregator.Aggregate(runCtx, portfolio.Input{
		Assets:   assets,
		Features: uow.CatalogRepository(),
		Progress: func(stage string, percent int) {
			ws.advance(job.CompanyId, run, stage, percent)
		},
		Cancelled: func() bool {
			return ws.tracker.CancelRequested(job.CompanyId)
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, redundancy.ErrCancelled):
			ws.finishCancelled(runCtx, uow, run)
		default:
			ws.finishFailed(runCtx, uow, run, err.Error())
		}
		return
	}

	ws.advance(job.CompanyId, run, "generating recommendations", 85)

	recommendations := ws.generator.Generate(result.ComparisonMatrix, result.Overlaps)
	for _, rec := range recommendations {
		rec.Id = uuid.New()
		rec.RunId = run.Id
		rec.CompanyId = job.CompanyId
	}
	result.Recommendations = recommendations

	if err := ws.persistResult(runCtx, run, result, recommendations); err != nil {
		ws.finishFailed(runCtx, uow, run, "failed to persist result: "+err.Error())
		return
	}

	ws.tracker.Complete(job.CompanyId)
	ws.pushProgress(job.CompanyId)
	ws.notifyCompleted(runCtx, job, run, result)
}

// persistResult writes the run and its recommendations atomically; a half
// persisted run must never surface as completed.
func (ws *analysisWorkerService) persistResult(ctx context.Context, run *entity.AnalysisRun, result *entity.AnalysisResult, recommendations []*entity.ConsolidationRecommendation) error {
	uow := ws.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	now := time.Now()
	run.Status = entity.RunStatusCompleted
	run.Stage = "completed"
	run.Percent = 100
	run.Result = result
	run.FinishedAt = &now

	if err := uow.AnalysisRunRepository().Update(ctx, run); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.RecommendationRepository().CreateBatch(ctx, recommendations); err != nil {
		uow.Rollback()
		return err
	}
	return uow.Commit()
}

func (ws *analysisWorkerService) finishFailed(ctx context.Context, uow unitofwork.UnitOfWork, run *entity.AnalysisRun, reason string) {
	ws.logger.Error("AnalysisWorker", "Analysis failed", map[string]interface{}{
		"run_id": run.Id,
		"error":  reason,
	})

	ws.tracker.Fail(run.CompanyId, reason)

	now := time.Now()
	run.Status = entity.RunStatusFailed
	run.ErrorSummary = reason
	run.FinishedAt = &now
	if err := uow.AnalysisRunRepository().Update(ctx, run); err != nil {
		ws.logger.Error("AnalysisWorker", "Failed to persist failed run", map[string]interface{}{"run_id": run.Id, "error": err})
	}

	ws.pushProgress(run.CompanyId)
	if ws.eventPublisher != nil {
		if err := ws.eventPublisher.Publish(ctx, events.NewAnalysisFailedEvent(run.CompanyId, run.Id, reason)); err != nil {
			log.Printf("[WARN] Failed to publish analysis failed event: %v", err)
		}
	}
	ws.emailCompanyUsers(ctx, run.CompanyId, func(email string) error {
		return ws.emailService.SendAnalysisFailure(email, run.CompanyId.String(), reason)
	})
}

func (ws *analysisWorkerService) finishCancelled(ctx context.Context, uow unitofwork.UnitOfWork, run *entity.AnalysisRun) {
	ws.tracker.MarkCancelled(run.CompanyId)

	now := time.Now()
	run.Status = entity.RunStatusCancelled
	run.FinishedAt = &now
	if err := uow.AnalysisRunRepository().Update(ctx, run); err != nil {
		ws.logger.Error("AnalysisWorker", "Failed to persist cancelled run", map[string]interface{}{"run_id": run.Id, "error": err})
	}

	ws.pushProgress(run.CompanyId)
	if ws.eventPublisher != nil {
		if err := ws.eventPublisher.Publish(ctx, events.NewAnalysisCancelledEvent(run.CompanyId, run.Id)); err != nil {
			log.Printf("[WARN] Failed to publish analysis cancelled event: %v", err)
		}
	}
}

func (ws *analysisWorkerService) notifyCompleted(ctx context.Context, job dto.AnalysisJobMessage, run *entity.AnalysisRun, result *entity.AnalysisResult) {
	ws.logger.Info("AnalysisWorker", "Analysis completed", map[string]interface{}{
		"run_id":                run.Id,
		"total_redundancy_cost": result.TotalRedundancyCost,
		"recommendations":       len(result.Recommendations),
	})

	if ws.eventPublisher != nil {
		event := events.NewAnalysisCompletedEvent(job.CompanyId, run.Id, result.TotalRedundancyCost, len(result.Recommendations))
		if err := ws.eventPublisher.Publish(ctx, event); err != nil {
			log.Printf("[WARN] Failed to publish analysis completed event: %v", err)
		}
	}

	totalSavings := 0.0
	for _, rec := range result.Recommendations {
		totalSavings += rec.EstimatedSavings
	}
	ws.emailCompanyUsers(ctx, job.CompanyId, func(email string) error {
		return ws.emailService.SendAnalysisReport(email, job.CompanyId.String(), totalSavings, len(result.Recommendations))
	})
}

func (ws *analysisWorkerService) emailCompanyUsers(ctx context.Context, companyId uuid.UUID, send func(email string) error) {
	if ws.emailService == nil {
		return
	}
	uow := ws.uowFactory.NewUnitOfWork(ctx)
	users, err := findCompanyUsers(ctx, uow, companyId)
	if err != nil {
		ws.logger.Warn("AnalysisWorker", "Failed to load company users for email", map[string]interface{}{"company_id": companyId, "error": err})
		return
	}
	for _, u := range users {
		if err := send(u.Email); err != nil {
			ws.logger.Warn("AnalysisWorker", "Failed to send report email", map[string]interface{}{"email": u.Email, "error": err})
		}
	}
}

func findCompanyUsers(ctx context.Context, uow unitofwork.UnitOfWork, companyId uuid.UUID) ([]*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.CompanyOwnedBy{CompanyID: companyId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return []*entity.User{user}, nil
}

// advance writes tracker progress, mirrors it onto the persisted run row and
// pushes it over the websocket.
func (ws *analysisWorkerService) advance(companyId uuid.UUID, run *entity.AnalysisRun, stage string, percent int) {
	ws.tracker.Advance(companyId, stage, percent)
	run.Status = entity.RunStatusRunning
	run.Stage = stage
	if percent > run.Percent {
		run.Percent = percent
	}
	ws.pushProgress(companyId)
}

func (ws *analysisWorkerService) pushProgress(companyId uuid.UUID) {
	if ws.hub == nil {
		return
	}
	if record, ok := ws.tracker.Get(companyId); ok {
		ws.hub.SendToCompany(companyId, websocket.Message{
			Type: "analysis_progress",
			Data: record,
		})
	}
}
