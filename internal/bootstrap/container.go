package bootstrap

import (
	"context"
	"log"
	"time"

	"prism-spend-be/internal/config"
	"prism-spend-be/internal/controller"
	"prism-spend-be/internal/pkg/logger"
	"prism-spend-be/internal/pkg/mailer"
	"prism-spend-be/internal/repository/memory"
	"prism-spend-be/internal/repository/unitofwork"
	"prism-spend-be/internal/service"
	"prism-spend-be/internal/websocket"
	"prism-spend-be/pkg/embedding"
	"prism-spend-be/pkg/enrichment"
	"prism-spend-be/pkg/redundancy/progress"

	pktNats "prism-spend-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const analysisJobTopic = "analysis.jobs"

type Container struct {
	// Controllers
	AuthController           controller.IAuthController
	SoftwareController       controller.ISoftwareController
	CatalogController        controller.ICatalogController
	RedundancyController     controller.IRedundancyController
	RecommendationController controller.IRecommendationController
	AlternativeController    controller.IAlternativeController

	// Background Services (Exposed for main.go to run)
	AnalysisWorkerService service.IAnalysisWorkerService

	// WebSockets
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.App.ClientURL,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. AI Providers
	enrichmentProvider := enrichment.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	embeddingProvider := embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)
	log.Printf("[INFO] Using Ollama providers (llm=%s, embedding=%s)", cfg.Ai.OllamaModel, cfg.Ai.EmbeddingModel)

	// 4. Analysis Pipeline
	progressRepo := memory.NewProgressRepository()
	tracker := progress.NewTracker(progressRepo)

	publisherService := service.NewPublisherService(analysisJobTopic, pubSub)
	workerService := service.NewAnalysisWorkerService(
		pubSub,
		analysisJobTopic,
		uowFactory,
		tracker,
		wsHub,
		natsPub,
		emailService,
		sysLogger,
		time.Duration(cfg.Analysis.TimeoutMinutes)*time.Minute,
	)

	// 5. Services
	authService := service.NewAuthService(uowFactory, cfg)
	softwareService := service.NewSoftwareService(uowFactory)
	catalogService := service.NewCatalogService(uowFactory, enrichmentProvider, embeddingProvider)
	redundancyService := service.NewRedundancyService(uowFactory, tracker, publisherService, natsPub)
	recommendationService := service.NewRecommendationService(uowFactory, natsPub)
	alternativeService := service.NewAlternativeService(uowFactory, embeddingProvider)

	// 6. Notification Relay (NATS -> WebSocket)
	notifService := service.NewNotificationService(natsSub, wsHub, wsLogger)
	if natsSub != nil {
		go notifService.Start()
	}

	return &Container{
		AuthController:           controller.NewAuthController(authService),
		SoftwareController:       controller.NewSoftwareController(softwareService),
		CatalogController:        controller.NewCatalogController(catalogService),
		RedundancyController:     controller.NewRedundancyController(redundancyService),
		RecommendationController: controller.NewRecommendationController(recommendationService),
		AlternativeController:    controller.NewAlternativeController(alternativeService),

		AnalysisWorkerService: workerService,
		WebSocketHub:          wsHub,
	}
}
