package orderController

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/lequanQL/glassity-api/models"
	"github.com/lequanQL/glassity-api/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub relays every orders snapshot replacement to connected clients. Each
// message is the full collection, mirroring the whole-slice publish of the
// underlying container.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub(orders *store.Collection[models.Order]) *Hub {
	h := &Hub{clients: make(map[*websocket.Conn]bool)}
	go h.relay(orders.Watch())
	return h
}

func (h *Hub) relay(updates chan []models.Order) {
	for snapshot := range updates {
		h.broadcast(snapshot)
	}
}

func (h *Hub) broadcast(orders []models.Order) {
	data, err := json.Marshal(orders)
	if err != nil {
		return
	}
	h.mu.Lock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
	h.mu.Unlock()
}

// GET /orders/ws
func (h *Hub) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			break
		}
	}
}
