package ws

import (
	"log/slog"
	"sync"

	"kitchenops/internal/core/domain/model/kernel"
)

// Room name helpers. The naming convention is part of the public
// contract with connected clients and must stay stable.

// RoomTenant names the room receiving every event of a tenant.
func RoomTenant(tenantID kernel.UUID) string {
	return "tenant:" + tenantID.String()
}

// RoomKitchen names the kitchen display room of a tenant.
func RoomKitchen(tenantID kernel.UUID) string {
	return "kitchen:" + tenantID.String()
}

// RoomOrder names the room tracking a single order.
func RoomOrder(orderID kernel.UUID) string {
	return "order:" + orderID.String()
}

// RoomCustomer names the room tracking a customer's orders.
func RoomCustomer(customerID kernel.UUID) string {
	return "customer:" + customerID.String()
}

// Hub tracks connected clients and their room memberships. There is no
// buffering or replay: a message broadcast to a room reaches only the
// clients subscribed at that moment.
type Hub struct {
	mu      sync.RWMutex
	rooms   map[string]map[*Client]struct{}
	members map[*Client]map[string]struct{}

	logger  *slog.Logger
	metrics *Metrics
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger, metrics *Metrics) *Hub {
	return &Hub{
		rooms:   make(map[string]map[*Client]struct{}),
		members: make(map[*Client]map[string]struct{}),
		logger:  logger.With("component", "ws-hub"),
		metrics: metrics,
	}
}

// register adds a new connection with no room memberships yet.
func (h *Hub) register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.members[client] = make(map[string]struct{})
	h.metrics.connections.Inc()
}

// unregister drops the client from every room it joined and closes its
// send channel. Safe to call more than once for the same client.
func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rooms, ok := h.members[client]
	if !ok {
		return
	}

	for room := range rooms {
		delete(h.rooms[room], client)
		if len(h.rooms[room]) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(h.members, client)
	close(client.send)
	h.metrics.connections.Dec()
}

// join subscribes a registered client to a room.
func (h *Hub) join(client *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.members[client]; !ok {
		return
	}

	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][client] = struct{}{}
	h.members[client][room] = struct{}{}
}

// leave removes a single room membership.
func (h *Hub) leave(client *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.rooms[room], client)
	if len(h.rooms[room]) == 0 {
		delete(h.rooms, room)
	}
	if rooms, ok := h.members[client]; ok {
		delete(rooms, room)
	}
}

// Broadcast sends the message to every client currently in the room.
// A client whose buffer is full misses the message instead of blocking
// the publisher.
func (h *Hub) Broadcast(room string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[room] {
		select {
		case client.send <- message:
			h.metrics.broadcasts.Inc()
		default:
			h.metrics.dropped.Inc()
			h.logger.Warn("client buffer full, dropping message", "room", room)
		}
	}
}

// ConnectionCount returns the number of registered clients.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.members)
}

func (h *Hub) roomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[room])
}
