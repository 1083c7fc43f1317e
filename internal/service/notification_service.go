package service

import (
	"context"

	"prism-spend-be/internal/pkg/logger"
	"prism-spend-be/internal/websocket"
	"prism-spend-be/pkg/events"
	pktNats "prism-spend-be/pkg/nats"

	"github.com/google/uuid"
)

// INotificationService relays lifecycle events from NATS to the websocket
// clients watching the affected company.
type INotificationService interface {
	Start()
}

type notificationService struct {
	subscriber *pktNats.Subscriber
	hub        *websocket.Hub
	logger     logger.ILogger
}

func NewNotificationService(subscriber *pktNats.Subscriber, hub *websocket.Hub, log logger.ILogger) INotificationService {
	return &notificationService{
		subscriber: subscriber,
		hub:        hub,
		logger:     log,
	}
}

func (s *notificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "prism-notifier", func(ctx context.Context, event events.Event) error {
		return s.handleEvent(event)
	})
	if err != nil {
		s.logger.Error("Notification", "Failed to subscribe to event bus", map[string]interface{}{"error": err})
	}
}

func (s *notificationService) handleEvent(event events.Event) error {
	payload := event.Payload()

	raw, ok := payload["company_id"].(string)
	if !ok {
		// Events without a company scope have no websocket audience.
		return nil
	}
	companyId, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}

	s.hub.SendToCompany(companyId, websocket.Message{
		Type: "analysis_event",
		Data: map[string]interface{}{
			"event":   event.EventType(),
			"payload": payload,
		},
	})
	return nil
}
