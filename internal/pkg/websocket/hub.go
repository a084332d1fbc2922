package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

// Hub maintains the set of active clients and broadcasts messages to them
type Hub struct {
	clients map[*Client]bool

	// Outbound frames for every client
	broadcast chan []byte

	// Replies addressed to a single client
	direct chan reply

	register   chan *Client
	unregister chan *Client

	// Closed when Run returns
	done chan struct{}

	// Guards count reads from outside the Run goroutine
	mu sync.RWMutex

	logger zerolog.Logger
}

type reply struct {
	client *Client
	data   []byte
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		direct:     make(chan reply, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run handles registrations and broadcasts until ctx is done, then closes
// every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info().Str("addr", client.addr).Msg("Client registered")

		case client := <-h.unregister:
			h.remove(client)

		case data := <-h.broadcast:
			h.broadcastFrame(data)

		case r := <-h.direct:
			h.sendTo(r.client, r.data)
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		h.logger.Info().Str("addr", client.addr).Msg("Client unregistered")
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
	}
}

// broadcastFrame runs on the Run goroutine. Clients whose buffer is full are
// dropped.
func (h *Hub) broadcastFrame(data []byte) {
	var slow []*Client

	h.mu.RLock()
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			slow = append(slow, client)
		}
	}
	count := len(h.clients)
	h.mu.RUnlock()

	for _, client := range slow {
		h.logger.Warn().Str("addr", client.addr).Msg("Dropping slow client")
		h.remove(client)
	}

	h.logger.Debug().Int("clientCount", count).Msg("Message broadcasted")
}

// sendTo runs on the Run goroutine, so client.send is still open whenever
// the client is registered.
func (h *Hub) sendTo(client *Client, data []byte) {
	h.mu.RLock()
	_, ok := h.clients[client]
	h.mu.RUnlock()
	if !ok {
		return
	}

	select {
	case client.send <- data:
	default:
		h.logger.Warn().Str("addr", client.addr).Msg("Dropping slow client")
		h.remove(client)
	}
}

// Broadcast queues msg for every connected client. It never blocks; when the
// queue is full the message is dropped.
func (h *Hub) Broadcast(msg Outbound) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error().Err(err).Str("type", msg.Type).Msg("Failed to marshal message for broadcast")
		return
	}

	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn().Str("type", msg.Type).Msg("Broadcast queue full, message dropped")
	}
}

// NotifyListChanged tells every client the current record count. Its
// signature matches the student store's change listener.
func (h *Hub) NotifyListChanged(count int) {
	h.Broadcast(ListChanged(count))
}

// ClientsCount returns the number of connected clients
func (h *Hub) ClientsCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
