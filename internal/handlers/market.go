package handlers

import (
	"net/http"
	"time"

	"tokensite/internal/websocket"

	"github.com/go-chi/chi/v5"
)

// Market endpoints only synthesize data; they never read the store. A symbol
// is resolved against the pair registry so unknown markets return 404.
func (h *Handler) marketSymbol(w http.ResponseWriter, r *http.Request) (string, bool) {
	symbol := symbolFromParam(chi.URLParam(r, "symbol"))
	if _, ok := h.pairs.FindPairBySymbol(symbol); !ok {
		respondError(w, http.StatusNotFound, "unknown market")
		return "", false
	}
	return symbol, true
}

func (h *Handler) MarketPrice(w http.ResponseWriter, r *http.Request) {
	symbol, ok := h.marketSymbol(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"symbol":    symbol,
		"price":     h.market.Price(symbol),
		"timestamp": time.Now(),
	})
}

func (h *Handler) MarketOrderBook(w http.ResponseWriter, r *http.Request) {
	symbol, ok := h.marketSymbol(w, r)
	if !ok {
		return
	}
	depth := parseLimitQuery(r, h.cfg.BookDepth)
	respondJSON(w, http.StatusOK, h.market.Book(symbol, depth))
}

func (h *Handler) MarketStats(w http.ResponseWriter, r *http.Request) {
	symbol, ok := h.marketSymbol(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.market.Stats24h(symbol))
}

func (h *Handler) MarketCandles(w http.ResponseWriter, r *http.Request) {
	symbol, ok := h.marketSymbol(w, r)
	if !ok {
		return
	}
	count := parseLimitQuery(r, 24)
	respondJSON(w, http.StatusOK, h.market.Candles(symbol, count))
}

func (h *Handler) WSMarket(w http.ResponseWriter, r *http.Request) {
	symbol := symbolFromParam(r.URL.Query().Get("symbol"))
	if symbol == "" {
		respondError(w, http.StatusBadRequest, "symbol is required")
		return
	}
	if _, ok := h.pairs.FindPairBySymbol(symbol); !ok {
		respondError(w, http.StatusNotFound, "unknown market")
		return
	}
	websocket.ServeWS(w, r, h.hub, symbol)
}
