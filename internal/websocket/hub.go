package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"prism-spend-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "prism_cluster_events"

// Message is one push frame delivered to subscribed clients.
type Message struct {
	Type string      `json:"type"` // "analysis_progress" | "analysis_event"
	Data interface{} `json:"data"`
}

type Hub struct {
	// Registered clients map: CompanyID -> list of clients (multi-tab, multi-user)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fan-out
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.CompanyID] = append(h.clients[client.CompanyID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"company_id": client.CompanyID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.CompanyID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.CompanyID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.CompanyID]) == 0 {
					delete(h.clients, client.CompanyID)
					h.logger.Info("Hub", "Company fully unregistered", map[string]interface{}{"company_id": client.CompanyID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// SendToCompany pushes a message to every client watching the company, on
// this instance and via Redis on every other one.
func (h *Hub) SendToCompany(companyID uuid.UUID, message Message) {
	data, _ := json.Marshal(message)

	h.mu.RLock()
	clients, localFound := h.clients[companyID]
	h.mu.RUnlock()

	if localFound {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"company_id": companyID})
				close(client.Send)
				h.unregister <- client
			}
		}
	}

	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_company_id": companyID.String(),
			"message":           data,
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), clusterChannel, jsonPayload)
	}
}

// subscribeToRedis relays messages published by other instances to clients
// connected locally.
func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			TargetCompanyID string          `json:"target_company_id"`
			Message         json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		companyID, err := uuid.Parse(payload.TargetCompanyID)
		if err != nil {
			continue
		}

		h.mu.RLock()
		clients, ok := h.clients[companyID]
		h.mu.RUnlock()

		if ok {
			for _, client := range clients {
				select {
				case client.Send <- payload.Message:
				default:
					close(client.Send)
					h.unregister <- client
				}
			}
		}
	}
}
