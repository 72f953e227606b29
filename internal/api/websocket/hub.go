package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub maintains the set of connected clients and broadcasts solve job
// events to all of them; there is one shared federation feed, not one
// room per job, since every client is watching the same solve.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message

	mu sync.RWMutex
}

// NewHub creates an empty hub. Call Run in its own goroutine before
// serving any connections.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
	}
}

// Run processes registrations and broadcasts until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.close()
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.deliver(message)
		}
	}
}

func (h *Hub) deliver(message *Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("websocket: failed to marshal message: %v", err)
		return
	}

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			delete(h.clients, client)
			client.close()
		}
	}
}

// BroadcastMessage satisfies optimizer.WebSocketBroadcaster: it queues a
// message for every connected client.
func (h *Hub) BroadcastMessage(messageType string, data interface{}) {
	h.broadcast <- &Message{Type: messageType, Data: data}
}

// GetClientCount reports how many clients are currently connected.
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
