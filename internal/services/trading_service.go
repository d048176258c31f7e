package services

import (
	"errors"
	"fmt"
	"time"

	"tokensite/internal/models"
	"tokensite/internal/store"
	"tokensite/internal/websocket"
)

var (
	ErrPairNotFound     = errors.New("trading pair not found")
	ErrPairInactive     = errors.New("trading pair is not active")
	ErrInvalidType      = errors.New("invalid order type")
	ErrInvalidSide      = errors.New("invalid order side")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrAmountOutOfRange = errors.New("amount outside pair trade limits")
	ErrInvalidPrice     = errors.New("limit orders require a positive price")
)

// tradePointsDivisor converts executed trade value into reward points:
// one point per ten units of quote value.
const tradePointsDivisor = 10

type OrderStore interface {
	CreateOrder(input store.OrderInput) models.Order
	GetOrder(id int64) (models.Order, bool)
}

type PairStore interface {
	GetPair(id int64) (models.TradingPair, bool)
}

type TradeStore interface {
	ApplyTrade(input store.TradeInput) models.Trade
}

type RewardsStore interface {
	CreateRewardsEvent(input store.RewardsEventInput) models.RewardsEvent
}

type Quoter interface {
	Price(symbol string) float64
}

type TradeHub interface {
	BroadcastTrade(channel string, update websocket.TradeUpdate)
}

// TradingService simulates order execution. Market orders self-fill against a
// fabricated opposite-side counter order at the synthetic market price; limit
// orders rest open and are never matched.
type TradingService struct {
	orders  OrderStore
	pairs   PairStore
	trades  TradeStore
	rewards RewardsStore
	quoter  Quoter
	hub     TradeHub
}

func NewTradingService(orders OrderStore, pairs PairStore, trades TradeStore, rewards RewardsStore, quoter Quoter, hub TradeHub) *TradingService {
	return &TradingService{
		orders:  orders,
		pairs:   pairs,
		trades:  trades,
		rewards: rewards,
		quoter:  quoter,
		hub:     hub,
	}
}

type PlaceOrderRequest struct {
	UserID        int64
	TradingPairID int64
	Type          string
	Side          string
	Price         float64
	Amount        float64
}

type PlaceOrderResult struct {
	Order models.Order  `json:"order"`
	Trade *models.Trade `json:"trade,omitempty"`
}

func (s *TradingService) PlaceOrder(req PlaceOrderRequest) (PlaceOrderResult, error) {
	if req.Type != models.OrderTypeMarket && req.Type != models.OrderTypeLimit {
		return PlaceOrderResult{}, ErrInvalidType
	}
	if req.Side != models.OrderSideBuy && req.Side != models.OrderSideSell {
		return PlaceOrderResult{}, ErrInvalidSide
	}
	if req.Amount <= 0 {
		return PlaceOrderResult{}, ErrInvalidAmount
	}
	pair, ok := s.pairs.GetPair(req.TradingPairID)
	if !ok {
		return PlaceOrderResult{}, ErrPairNotFound
	}
	if !pair.IsActive {
		return PlaceOrderResult{}, ErrPairInactive
	}
	if req.Amount < pair.MinTradeAmount || (pair.MaxTradeAmount > 0 && req.Amount > pair.MaxTradeAmount) {
		return PlaceOrderResult{}, ErrAmountOutOfRange
	}

	if req.Type == models.OrderTypeLimit {
		if req.Price <= 0 {
			return PlaceOrderResult{}, ErrInvalidPrice
		}
		order := s.orders.CreateOrder(store.OrderInput{
			UserID:        req.UserID,
			TradingPairID: req.TradingPairID,
			Type:          models.OrderTypeLimit,
			Side:          req.Side,
			Price:         req.Price,
			Amount:        req.Amount,
		})
		return PlaceOrderResult{Order: order}, nil
	}

	price := s.quoter.Price(pair.PairSymbol)
	order := s.orders.CreateOrder(store.OrderInput{
		UserID:        req.UserID,
		TradingPairID: req.TradingPairID,
		Type:          models.OrderTypeMarket,
		Side:          req.Side,
		Price:         price,
		Amount:        req.Amount,
	})
	// The counter order belongs to no user (user id 0) so only the taker's
	// trading volume moves.
	counter := s.orders.CreateOrder(store.OrderInput{
		TradingPairID: req.TradingPairID,
		Type:          models.OrderTypeMarket,
		Side:          oppositeSide(req.Side),
		Price:         price,
		Amount:        req.Amount,
	})

	totalValue := price * req.Amount
	input := store.TradeInput{
		TradingPairID: req.TradingPairID,
		Price:         price,
		Amount:        req.Amount,
		TotalValue:    totalValue,
		Fee:           totalValue * pair.TradingFee,
	}
	if req.Side == models.OrderSideBuy {
		input.BuyOrderID = order.ID
		input.SellOrderID = counter.ID
	} else {
		input.BuyOrderID = counter.ID
		input.SellOrderID = order.ID
	}
	trade := s.trades.ApplyTrade(input)

	if points := int64(totalValue / tradePointsDivisor); points > 0 {
		s.rewards.CreateRewardsEvent(store.RewardsEventInput{
			UserID:      req.UserID,
			EventType:   "trade",
			Points:      points,
			Description: fmt.Sprintf("Trade on %s", pair.PairSymbol),
		})
	}

	s.hub.BroadcastTrade(pair.PairSymbol, websocket.TradeUpdate{
		Symbol:    pair.PairSymbol,
		Side:      req.Side,
		Price:     trade.Price,
		Amount:    trade.Amount,
		Timestamp: time.Now(),
	})

	executed, ok := s.orders.GetOrder(order.ID)
	if !ok {
		executed = order
	}
	return PlaceOrderResult{Order: executed, Trade: &trade}, nil
}

func oppositeSide(side string) string {
	if side == models.OrderSideBuy {
		return models.OrderSideSell
	}
	return models.OrderSideBuy
}
