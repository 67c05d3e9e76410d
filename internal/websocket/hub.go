package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"notekeep-be/internal/dto"
	"notekeep-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisChannel = "notekeep_changes"

// Hub fans change events out to every connected tab. Connections are
// anonymous; there is no per-user routing in the change feed.
type Hub struct {
	// Registered clients keyed by connection id
	clients map[string]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance fan-out, may be nil
	rdb *redis.Client

	// instanceId lets the subscriber skip messages this hub published
	instanceId string

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string]*Client),
		rdb:        rdb,
		instanceId: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.Id] = client
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"conn_id": client.Id})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.Id]; ok {
				delete(h.clients, client.Id)
				close(client.Send)
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"conn_id": client.Id})
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends a change event to every connected client, and relays
// it through Redis so other instances can do the same.
func (h *Hub) Broadcast(event dto.ChangeEvent) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "change",
		"data": event,
	})

	h.broadcastLocal(data)

	if h.rdb != nil {
		envelope, _ := json.Marshal(map[string]interface{}{
			"origin":  h.instanceId,
			"message": json.RawMessage(data),
		})
		h.rdb.Publish(context.Background(), redisChannel, envelope)
	}
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"conn_id": client.Id})
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, redisChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var envelope struct {
			Origin  string          `json:"origin"`
			Message json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}
		// Skip our own publications, local clients already got them.
		if envelope.Origin == h.instanceId {
			continue
		}
		h.broadcastLocal(envelope.Message)
	}
}
