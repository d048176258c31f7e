package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tokensite/internal/config"
	"tokensite/internal/handlers"
	"tokensite/internal/market"
	"tokensite/internal/seed"
	"tokensite/internal/services"
	"tokensite/internal/store"
	"tokensite/internal/wallet"
	"tokensite/internal/websocket"
)

func main() {
	cfg := config.Load()

	st := store.New()
	seed.Apply(st)

	source := market.NewSource()
	hub := websocket.NewHub()
	trading := services.NewTradingService(st, st, st, st, source, hub)
	connector := wallet.NewConnector()

	handler := handlers.New(cfg, st, st, st, st, st, st, st, trading, source, connector, hub)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stopTicker := make(chan struct{})
	go broadcastTickers(st, source, hub, cfg.TickerInterval, stopTicker)

	go func() {
		log.Printf("tokensite API listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown
	close(stopTicker)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}

// broadcastTickers pushes a synthetic price for every active pair to the
// market websocket channels on a fixed interval.
func broadcastTickers(st *store.Store, source *market.Source, hub *websocket.Hub, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			for _, pair := range st.ListPairs(true) {
				hub.BroadcastTicker(pair.PairSymbol, websocket.TickerUpdate{
					Symbol:    pair.PairSymbol,
					Price:     source.Price(pair.PairSymbol),
					Timestamp: time.Now(),
				})
			}
		}
	}
}
