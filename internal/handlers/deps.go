package handlers

import (
	"context"

	"tokensite/internal/market"
	"tokensite/internal/models"
	"tokensite/internal/services"
	"tokensite/internal/store"
)

type UserStore interface {
	CreateUser(input store.UserInput) models.User
	GetUser(id int64) (models.User, bool)
	UpdateUser(id int64, update store.UserUpdate) (models.User, bool)
	FindUserByUsername(username string) (models.User, bool)
	FindUserByEmail(email string) (models.User, bool)
	FindUserByWalletAddress(address string) (models.User, bool)
	GenerateResetToken(email string) (string, bool)
	ResetPassword(token, newPassword string) bool
	TopUsersByRewardsPoints(limit int) []models.User
	TopUsersByTradingVolume(limit int) []models.User
}

type PairStore interface {
	CreatePair(input store.PairInput) models.TradingPair
	GetPair(id int64) (models.TradingPair, bool)
	UpdatePair(id int64, update store.PairUpdate) (models.TradingPair, bool)
	FindPairBySymbol(symbol string) (models.TradingPair, bool)
	ListPairs(activeOnly bool) []models.TradingPair
}

type OrderStore interface {
	GetOrder(id int64) (models.Order, bool)
	CancelOrder(id int64) (models.Order, bool)
	OrdersByUser(userID int64) []models.Order
	OrdersByPair(pairID int64, status string) []models.Order
}

type TradeStore interface {
	TradesByUser(userID int64) []models.Trade
	TradesByPair(pairID int64) []models.Trade
}

type RewardsStore interface {
	CreateRewardsEvent(input store.RewardsEventInput) models.RewardsEvent
	RewardsEventsByUser(userID int64) []models.RewardsEvent
	ListRewardsTiers() []models.RewardsTier
	TierForUser(userID int64) (models.RewardsTier, bool)
}

type NewsStore interface {
	CreateArticle(input store.ArticleInput) models.NewsArticle
	GetArticle(id int64) (models.NewsArticle, bool)
	UpdateArticle(id int64, update store.ArticleUpdate) (models.NewsArticle, bool)
	ListPublishedArticles() []models.NewsArticle
}

type SubscriberStore interface {
	CreateSubscriber(email string) models.Subscriber
	FindSubscriberByEmail(email string) (models.Subscriber, bool)
	Unsubscribe(email string) bool
	ReactivateSubscriber(email string) (models.Subscriber, bool)
}

type TradingService interface {
	PlaceOrder(req services.PlaceOrderRequest) (services.PlaceOrderResult, error)
}

type MarketSource interface {
	Price(symbol string) float64
	Book(symbol string, depth int) market.OrderBook
	Stats24h(symbol string) market.Stats
	Candles(symbol string, count int) []market.Candle
}

type WalletConnector interface {
	Connect(ctx context.Context, address string) (string, error)
}
