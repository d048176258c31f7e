package services

import (
	"errors"
	"testing"

	"tokensite/internal/models"
	"tokensite/internal/store"
	"tokensite/internal/websocket"
)

type fixedQuoter struct {
	price float64
}

func (q fixedQuoter) Price(string) float64 { return q.price }

type recordingHub struct {
	updates []websocket.TradeUpdate
}

func (h *recordingHub) BroadcastTrade(channel string, update websocket.TradeUpdate) {
	h.updates = append(h.updates, update)
}

func newServiceFixture(t *testing.T) (*TradingService, *store.Store, *recordingHub, models.User, models.TradingPair) {
	t.Helper()
	st := store.New()
	user := st.CreateUser(store.UserInput{Username: "alice", Email: "alice@x.com", Password: "pw123456"})
	pair := st.CreatePair(store.PairInput{
		BaseAsset:      "TNE",
		QuoteAsset:     "SOL",
		PairSymbol:     "TNE/SOL",
		MinTradeAmount: 100,
		MaxTradeAmount: 10000,
		TradingFee:     0.002,
		IsActive:       true,
	})
	hub := &recordingHub{}
	service := NewTradingService(st, st, st, st, fixedQuoter{price: 2}, hub)
	return service, st, hub, user, pair
}

func TestPlaceMarketOrderSelfFills(t *testing.T) {
	service, st, hub, user, pair := newServiceFixture(t)

	result, err := service.PlaceOrder(PlaceOrderRequest{
		UserID:        user.ID,
		TradingPairID: pair.ID,
		Type:          models.OrderTypeMarket,
		Side:          models.OrderSideBuy,
		Amount:        500,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Order.Status != models.OrderStatusFilled || result.Order.Filled != 500 {
		t.Fatalf("expected fully filled order, got %+v", result.Order)
	}
	if result.Trade == nil {
		t.Fatal("expected a trade")
	}
	if result.Trade.TotalValue != 1000 || result.Trade.Fee != 2 {
		t.Fatalf("unexpected trade economics: %+v", result.Trade)
	}
	if result.Trade.BuyOrderID != result.Order.ID {
		t.Fatalf("buy side should be the taker, got %+v", result.Trade)
	}

	// A fabricated opposite-side counter order exists and is owned by nobody.
	counter, ok := st.GetOrder(result.Trade.SellOrderID)
	if !ok || counter.UserID != 0 || counter.Side != models.OrderSideSell {
		t.Fatalf("unexpected counter order: %+v %v", counter, ok)
	}

	gotUser, _ := st.GetUser(user.ID)
	if gotUser.TotalTradingVolume != 1000 {
		t.Fatalf("taker volume should rise once by total value, got %v", gotUser.TotalTradingVolume)
	}
	// 1000 quote units of value earn 100 points.
	if gotUser.RewardsPoints != 100 {
		t.Fatalf("expected 100 trade points, got %d", gotUser.RewardsPoints)
	}
	events := st.RewardsEventsByUser(user.ID)
	if len(events) != 1 || events[0].EventType != "trade" {
		t.Fatalf("expected one trade event, got %+v", events)
	}

	if len(hub.updates) != 1 || hub.updates[0].Symbol != "TNE/SOL" || hub.updates[0].Amount != 500 {
		t.Fatalf("unexpected broadcast: %+v", hub.updates)
	}
}

func TestPlaceMarketSellOrderSides(t *testing.T) {
	service, st, _, user, pair := newServiceFixture(t)

	result, err := service.PlaceOrder(PlaceOrderRequest{
		UserID:        user.ID,
		TradingPairID: pair.ID,
		Type:          models.OrderTypeMarket,
		Side:          models.OrderSideSell,
		Amount:        200,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Trade.SellOrderID != result.Order.ID {
		t.Fatalf("sell side should be the taker, got %+v", result.Trade)
	}
	counter, _ := st.GetOrder(result.Trade.BuyOrderID)
	if counter.Side != models.OrderSideBuy {
		t.Fatalf("expected buy counter order, got %+v", counter)
	}
}

func TestPlaceLimitOrderRestsOpen(t *testing.T) {
	service, st, hub, user, pair := newServiceFixture(t)

	result, err := service.PlaceOrder(PlaceOrderRequest{
		UserID:        user.ID,
		TradingPairID: pair.ID,
		Type:          models.OrderTypeLimit,
		Side:          models.OrderSideBuy,
		Price:         1.5,
		Amount:        300,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Order.Status != models.OrderStatusOpen || result.Trade != nil {
		t.Fatalf("limit order must rest open without a trade, got %+v", result)
	}
	if len(hub.updates) != 0 {
		t.Fatalf("no broadcast expected, got %+v", hub.updates)
	}
	if trades := st.TradesByUser(user.ID); len(trades) != 0 {
		t.Fatalf("no trades expected, got %+v", trades)
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	service, st, _, user, pair := newServiceFixture(t)
	inactive := st.CreatePair(store.PairInput{PairSymbol: "X/Y", MinTradeAmount: 1, IsActive: false})

	tests := []struct {
		name string
		req  PlaceOrderRequest
		want error
	}{
		{"bad type", PlaceOrderRequest{UserID: user.ID, TradingPairID: pair.ID, Type: "stop", Side: "buy", Amount: 500}, ErrInvalidType},
		{"bad side", PlaceOrderRequest{UserID: user.ID, TradingPairID: pair.ID, Type: "market", Side: "hold", Amount: 500}, ErrInvalidSide},
		{"zero amount", PlaceOrderRequest{UserID: user.ID, TradingPairID: pair.ID, Type: "market", Side: "buy"}, ErrInvalidAmount},
		{"unknown pair", PlaceOrderRequest{UserID: user.ID, TradingPairID: 99, Type: "market", Side: "buy", Amount: 500}, ErrPairNotFound},
		{"inactive pair", PlaceOrderRequest{UserID: user.ID, TradingPairID: inactive.ID, Type: "market", Side: "buy", Amount: 500}, ErrPairInactive},
		{"below minimum", PlaceOrderRequest{UserID: user.ID, TradingPairID: pair.ID, Type: "market", Side: "buy", Amount: 50}, ErrAmountOutOfRange},
		{"above maximum", PlaceOrderRequest{UserID: user.ID, TradingPairID: pair.ID, Type: "market", Side: "buy", Amount: 50000}, ErrAmountOutOfRange},
		{"limit without price", PlaceOrderRequest{UserID: user.ID, TradingPairID: pair.ID, Type: "limit", Side: "buy", Amount: 500}, ErrInvalidPrice},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.PlaceOrder(tc.req); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
