package realtime

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is the envelope every feed event travels in.
type Message struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// Hub fans messages out to every connected websocket client. One hub serves
// the admin console feed; a send that would block drops the client rather
// than stalling the broadcaster.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]bool
	log     *logrus.Logger
}

type client struct {
	conn *websocket.Conn
	send chan Message
}

func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]bool),
		log:     log,
	}
}

// Broadcast delivers one message to every connected client.
func (h *Hub) Broadcast(messageType string, data interface{}) {
	msg := Message{
		Type:      messageType,
		Data:      data,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for cl := range h.clients {
		select {
		case cl.send <- msg:
		default:
			h.log.Warn("websocket client too slow, dropping connection")
			go cl.conn.Close()
		}
	}
}

// ServeWS upgrades the request and keeps the connection registered until the
// peer goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	cl := &client{conn: conn, send: make(chan Message, 16)}

	h.mu.Lock()
	h.clients[cl] = true
	h.mu.Unlock()
	h.log.WithField("clients", h.ClientCount()).Info("websocket client connected")

	go h.writeLoop(cl)
	h.readLoop(cl)
}

func (h *Hub) writeLoop(cl *client) {
	for msg := range cl.send {
		if err := cl.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// readLoop discards inbound frames; the feed is one-way. It returns, and the
// client is unregistered, when the connection drops.
func (h *Hub) readLoop(cl *client) {
	defer func() {
		h.mu.Lock()
		if _, ok := h.clients[cl]; ok {
			delete(h.clients, cl)
			close(cl.send)
		}
		h.mu.Unlock()
		cl.conn.Close()
		h.log.WithField("clients", h.ClientCount()).Info("websocket client disconnected")
	}()

	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
