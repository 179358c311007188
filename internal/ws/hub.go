package ws

import (
	"log"
	"sync"
	"time"

	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Hub fans market status updates out to connected clients. A refresher
// re-evaluates the combined status once a minute, mirroring the portal's
// polling cadence, and broadcasts only on change.
type Hub struct {
	clients map[string]*models.Client

	register chan *models.Client

	unregister chan *models.Client

	broadcast chan *models.CombinedMarketStatus

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*models.Client),
		register:   make(chan *models.Client),
		unregister: make(chan *models.Client),
		broadcast:  make(chan *models.CombinedMarketStatus),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				client.Close()
			}
			h.mu.Unlock()

		case status := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				select {
				case client.Send <- status:
				default:
					log.Printf("Client %s buffer full, skipping message", client.ID)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// RunStatusRefresher polls the decision engine and broadcasts transitions.
func (h *Hub) RunStatusRefresher(marketService service.MarketService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last *models.CombinedMarketStatus
	for range ticker.C {
		status := marketService.GetMarketStatus()
		if last != nil && *last == status {
			continue
		}
		last = &status
		h.BroadcastStatus(&status)
	}
}

func (h *Hub) RegisterClient(conn *websocket.Conn) *models.Client {
	clientID := uuid.New().String()
	client := models.NewClient(clientID, conn)
	h.register <- client
	return client
}

func (h *Hub) UnregisterClient(client *models.Client) {
	h.unregister <- client
}

func (h *Hub) BroadcastStatus(status *models.CombinedMarketStatus) {
	h.broadcast <- status
}

func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
