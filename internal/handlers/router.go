package handlers

import (
	"net/http"

	"tokensite/internal/config"
	"tokensite/internal/middleware"
	"tokensite/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	cfg         config.Config
	users       UserStore
	pairs       PairStore
	orders      OrderStore
	trades      TradeStore
	rewards     RewardsStore
	news        NewsStore
	subscribers SubscriberStore
	trading     TradingService
	market      MarketSource
	wallet      WalletConnector
	hub         *websocket.Hub
}

func New(cfg config.Config, users UserStore, pairs PairStore, orders OrderStore, trades TradeStore, rewards RewardsStore, news NewsStore, subscribers SubscriberStore, trading TradingService, market MarketSource, wallet WalletConnector, hub *websocket.Hub) *Handler {
	return &Handler{
		cfg:         cfg,
		users:       users,
		pairs:       pairs,
		orders:      orders,
		trades:      trades,
		rewards:     rewards,
		news:        news,
		subscribers: subscribers,
		trading:     trading,
		market:      market,
		wallet:      wallet,
		hub:         hub,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(middleware.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.AllowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	auth := middleware.Auth(h.users)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/forgot-password", h.ForgotPassword)
		r.Post("/reset-password", h.ResetPassword)
		r.With(auth).Get("/me", h.Me)
	})

	router.With(auth).Get("/users/username/{username}", h.GetUserByUsername)
	router.Get("/leaderboard/points", h.LeaderboardByPoints)
	router.Get("/leaderboard/volume", h.LeaderboardByVolume)

	router.Route("/pairs", func(r chi.Router) {
		r.Get("/", h.ListPairs)
		r.With(auth).Post("/", h.CreatePair)
		r.Get("/{id}", h.GetPair)
		r.With(auth).Put("/{id}", h.UpdatePair)
		r.Get("/{id}/orders", h.OrdersByPair)
		r.Get("/{id}/trades", h.TradesByPair)
	})

	router.Route("/orders", func(r chi.Router) {
		r.Use(auth)
		r.Post("/", h.PlaceOrder)
		r.Get("/", h.ListMyOrders)
		r.Get("/{id}", h.GetOrder)
		r.Delete("/{id}", h.CancelOrder)
	})
	router.With(auth).Get("/trades", h.ListMyTrades)

	router.Route("/rewards", func(r chi.Router) {
		r.Get("/tiers", h.ListRewardsTiers)
		r.With(auth).Get("/me", h.MyRewards)
		r.With(auth).Post("/events", h.CreateRewardsEvent)
	})

	router.Route("/news", func(r chi.Router) {
		r.Get("/", h.ListNews)
		r.Get("/{id}", h.GetNews)
		r.With(auth).Post("/", h.CreateNews)
		r.With(auth).Put("/{id}", h.UpdateNews)
	})

	router.Route("/newsletter", func(r chi.Router) {
		r.Post("/subscribe", h.Subscribe)
		r.Post("/unsubscribe", h.Unsubscribe)
	})

	router.Route("/market/{symbol}", func(r chi.Router) {
		r.Get("/price", h.MarketPrice)
		r.Get("/orderbook", h.MarketOrderBook)
		r.Get("/stats", h.MarketStats)
		r.Get("/candles", h.MarketCandles)
	})
	router.Get("/ws/market", h.WSMarket)

	router.With(auth).Post("/wallet/connect", h.ConnectWallet)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	router.Handle("/metrics", promhttp.Handler())
	return router
}
