package ws_notify

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/humanbelnik/cinevault/internal/model"
)

const sendBuffer = 256

// Message is what admin consoles receive.
type Message struct {
	Type    model.EventType `json:"type"`
	Payload map[string]any  `json:"payload,omitempty"`
}

type Client struct {
	Hub   *Hub
	Conn  *websocket.Conn
	Send  chan []byte
	Token string
	Email string
}

func NewClient(hub *Hub, conn *websocket.Conn, session model.Session) *Client {
	return &Client{
		Hub:   hub,
		Conn:  conn,
		Send:  make(chan []byte, sendBuffer),
		Token: session.Token,
		Email: session.Email,
	}
}

// Hub fans catalog, settings and session events out to every connected
// admin console.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool

	logger *slog.Logger
}

type Option func(*Hub)

func WithLogger(logger *slog.Logger) Option {
	return func(h *Hub) {
		h.logger = logger
	}
}

func New(opts ...Option) *Hub {
	h := &Hub{
		clients: make(map[*Client]bool),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Hub) RegisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	h.logger.Info("client registered", slog.String("email", client.Email))
}

func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.drop(client)
	h.logger.Info("client unregistered", slog.String("email", client.Email))
}

func (h *Hub) ClientsCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish broadcasts e. Session tokens never leave the server. When a
// session ends its own consoles get the event and are then disconnected.
func (h *Hub) Publish(e model.Event) {
	token, _ := e.Payload["token"].(string)

	msg := Message{Type: e.Type, Payload: make(map[string]any, len(e.Payload))}
	for k, v := range e.Payload {
		if k == "token" {
			continue
		}
		msg.Payload[k] = v
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("failed to encode event",
			slog.String("type", string(e.Type)),
			slog.String("error", err.Error()),
		)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.Send <- raw:
		default:
			h.logger.Warn("dropping slow client", slog.String("email", client.Email))
			h.drop(client)
		}
	}

	if e.Type == model.EventSessionEnded && token != "" {
		for client := range h.clients {
			if client.Token == token {
				h.drop(client)
			}
		}
	}
}

// Close disconnects everyone.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		h.drop(client)
	}
}

// drop must be called with mu held.
func (h *Hub) drop(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.Send)
}

func (h *Hub) StartClientReading(client *Client) {
	defer func() {
		h.RemoveClient(client)
		client.Conn.Close()
	}()

	for {
		_, _, err := client.Conn.ReadMessage()
		if err != nil {
			break
		}
	}
}

func (h *Hub) StartClientWriting(client *Client) {
	defer client.Conn.Close()

	for message := range client.Send {
		err := client.Conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			break
		}
	}
	_ = client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
