package websocket

import (
	"encoding/json"
	"sync"
	"time"
)

type TickerUpdate struct {
	Type      string    `json:"type"`
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

type TradeUpdate struct {
	Type      string    `json:"type"`
	Symbol    string    `json:"symbol"`
	Side      string    `json:"side"`
	Price     float64   `json:"price"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// Hub fans market updates out to websocket clients subscribed to a pair
// symbol channel.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(channel string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[channel] == nil {
		h.clients[channel] = make(map[*Client]struct{})
	}
	h.clients[channel][client] = struct{}{}
}

func (h *Hub) Unregister(channel string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[channel] == nil {
		return
	}
	delete(h.clients[channel], client)
	if len(h.clients[channel]) == 0 {
		delete(h.clients, channel)
	}
}

func (h *Hub) BroadcastTicker(channel string, update TickerUpdate) {
	update.Type = "ticker"
	h.broadcast(channel, update)
}

func (h *Hub) BroadcastTrade(channel string, update TradeUpdate) {
	update.Type = "trade"
	h.broadcast(channel, update)
}

func (h *Hub) broadcast(channel string, payload any) {
	message, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[channel] {
		select {
		case client.send <- message:
		default:
		}
	}
}
