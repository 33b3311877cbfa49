// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

// Package websocket pushes live dataset changes to connected dashboards so
// an import or edit in one session appears on every open map without a
// refresh.
package websocket

import (
	"context"
	"sync"

	"github.com/mkotze/translocatus/internal/logging"
	"github.com/mkotze/translocatus/internal/models"
)

// Message types pushed to dashboard clients.
const (
	MessageTypeRecordsChanged  = "records_changed"
	MessageTypeImportCompleted = "import_completed"
	MessageTypePing            = "ping"
	MessageTypePong            = "pong"
)

// Message is one WebSocket frame payload.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// RecordsChangedData describes what changed for a records_changed message.
type RecordsChangedData struct {
	Action string `json:"action"` // "created", "updated", "deleted", "replaced"
	ID     string `json:"id,omitempty"`
}

// Hub maintains the set of active clients and broadcasts messages to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Message
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan Message, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// Run processes client lifecycle events and broadcasts until the context is
// canceled, then closes every client so shutdown leaves no orphaned
// connections.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.closeAllClients()
			return ctx.Err()

		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			logging.Info().Int("total_clients", total).Msg("WebSocket client connected")

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			logging.Info().Int("total_clients", total).Msg("WebSocket client disconnected")

		case message := <-h.broadcast:
			h.broadcastToClients(message)
		}
	}
}

// broadcastToClients fans a message out to every client. A client whose send
// buffer is full is dropped; a stalled dashboard must not block the rest.
func (h *Hub) broadcastToClients(message Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var toRemove []*Client
	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			toRemove = append(toRemove, client)
		}
	}

	for _, client := range toRemove {
		close(client.send)
		delete(h.clients, client)
	}
}

func (h *Hub) closeAllClients() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
	logging.Info().Msg("Closed all WebSocket clients during shutdown")
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastRecordsChanged notifies clients that the dataset changed.
func (h *Hub) BroadcastRecordsChanged(action, id string) {
	h.send(Message{
		Type: MessageTypeRecordsChanged,
		Data: RecordsChangedData{Action: action, ID: id},
	})
}

// BroadcastImportCompleted pushes the outcome of a finished import.
func (h *Hub) BroadcastImportCompleted(outcome *models.ImportOutcome) {
	h.send(Message{
		Type: MessageTypeImportCompleted,
		Data: outcome,
	})
}

// send enqueues a broadcast without blocking the caller. A full broadcast
// queue drops the message; dashboards refetch on reconnect anyway.
func (h *Hub) send(message Message) {
	select {
	case h.broadcast <- message:
	default:
		logging.Warn().Str("type", message.Type).Msg("WebSocket broadcast queue full, dropping message")
	}
}
