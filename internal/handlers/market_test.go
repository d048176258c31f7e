package handlers

import (
	"net/http"
	"testing"

	"tokensite/internal/market"
)

func TestMarketPrice(t *testing.T) {
	handler, _ := newTestServer(t)
	w := doJSON(t, handler, http.MethodGet, "/market/TNE-USDT/price", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Symbol string  `json:"symbol"`
		Price  float64 `json:"price"`
	}
	decodeBody(t, w, &resp)
	if resp.Symbol != "TNE/USDT" || resp.Price <= 0 {
		t.Fatalf("unexpected price payload: %+v", resp)
	}

	if w := doJSON(t, handler, http.MethodGet, "/market/NOPE-USDT/price", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("unknown market: expected 404, got %d", w.Code)
	}
}

func TestMarketOrderBook(t *testing.T) {
	handler, _ := newTestServer(t)
	w := doJSON(t, handler, http.MethodGet, "/market/TNE-USDT/orderbook?limit=5", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var book market.OrderBook
	decodeBody(t, w, &book)
	if len(book.Bids) != 5 || len(book.Asks) != 5 {
		t.Fatalf("expected 5 levels per side, got %d/%d", len(book.Bids), len(book.Asks))
	}
}

func TestMarketStatsAndCandles(t *testing.T) {
	handler, _ := newTestServer(t)
	w := doJSON(t, handler, http.MethodGet, "/market/TNE-USDT/stats", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats: expected 200, got %d", w.Code)
	}
	var stats market.Stats
	decodeBody(t, w, &stats)
	if stats.Symbol != "TNE/USDT" {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	w = doJSON(t, handler, http.MethodGet, "/market/TNE-USDT/candles?limit=6", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("candles: expected 200, got %d", w.Code)
	}
	var candles []market.Candle
	decodeBody(t, w, &candles)
	if len(candles) != 6 {
		t.Fatalf("expected 6 candles, got %d", len(candles))
	}
}
