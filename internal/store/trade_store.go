package store

import (
	"sort"

	"tokensite/internal/models"
)

type TradeInput struct {
	BuyOrderID    int64
	SellOrderID   int64
	TradingPairID int64
	Price         float64
	Amount        float64
	TotalValue    float64
	Fee           float64
}

// ApplyTrade appends an immutable trade record, advances the cumulative fill
// and status of both referenced orders, and adds the trade's total value to
// both parties' trading volume. The four mutations happen under one lock so
// no reader observes a half-applied trade. References to missing orders or
// users are silent no-ops.
func (s *Store) ApplyTrade(input TradeInput) models.Trade {
	s.mu.Lock()
	defer s.mu.Unlock()
	trade := &models.Trade{
		ID:            nextID(&s.tradeSeq),
		BuyOrderID:    input.BuyOrderID,
		SellOrderID:   input.SellOrderID,
		TradingPairID: input.TradingPairID,
		Price:         input.Price,
		Amount:        input.Amount,
		TotalValue:    input.TotalValue,
		Fee:           input.Fee,
		Timestamp:     s.now(),
	}
	s.trades[trade.ID] = trade
	s.applyFill(input.BuyOrderID, input.Amount, input.TotalValue)
	s.applyFill(input.SellOrderID, input.Amount, input.TotalValue)
	return *trade
}

func (s *Store) applyFill(orderID int64, amount, totalValue float64) {
	order, ok := s.orders[orderID]
	if !ok {
		return
	}
	order.Filled += amount
	if order.Filled >= order.Amount {
		order.Status = models.OrderStatusFilled
	} else {
		order.Status = models.OrderStatusPartial
	}
	order.UpdatedAt = s.now()
	if user, ok := s.users[order.UserID]; ok {
		user.TotalTradingVolume += totalValue
	}
}

func (s *Store) GetTrade(id int64) (models.Trade, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	trade, ok := s.trades[id]
	if !ok {
		return models.Trade{}, false
	}
	return *trade, true
}

// TradesByUser returns every trade touching one of the user's orders on
// either side, ordered by id.
func (s *Store) TradesByUser(userID int64) []models.Trade {
	s.mu.Lock()
	defer s.mu.Unlock()
	orderIDs := make(map[int64]struct{})
	for _, order := range s.orders {
		if order.UserID == userID {
			orderIDs[order.ID] = struct{}{}
		}
	}
	trades := make([]models.Trade, 0)
	for _, trade := range s.trades {
		if _, buy := orderIDs[trade.BuyOrderID]; buy {
			trades = append(trades, *trade)
			continue
		}
		if _, sell := orderIDs[trade.SellOrderID]; sell {
			trades = append(trades, *trade)
		}
	}
	sort.Slice(trades, func(i, j int) bool { return trades[i].ID < trades[j].ID })
	return trades
}

func (s *Store) TradesByPair(pairID int64) []models.Trade {
	s.mu.Lock()
	defer s.mu.Unlock()
	trades := make([]models.Trade, 0)
	for _, trade := range s.trades {
		if trade.TradingPairID == pairID {
			trades = append(trades, *trade)
		}
	}
	sort.Slice(trades, func(i, j int) bool { return trades[i].ID < trades[j].ID })
	return trades
}
