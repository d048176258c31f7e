package store

import (
	"sort"

	"tokensite/internal/models"
)

type OrderInput struct {
	UserID        int64
	TradingPairID int64
	Type          string
	Side          string
	Price         float64
	Amount        float64
}

// CreateOrder appends an order to the ledger. Market orders are marked filled
// immediately (the store assumes an instantaneous self-fill, there is no real
// matching); limit orders start open. Cumulative fill starts at zero either
// way and is advanced by ApplyTrade.
func (s *Store) CreateOrder(input OrderInput) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	status := models.OrderStatusOpen
	if input.Type == models.OrderTypeMarket {
		status = models.OrderStatusFilled
	}
	order := &models.Order{
		ID:            nextID(&s.orderSeq),
		UserID:        input.UserID,
		TradingPairID: input.TradingPairID,
		Type:          input.Type,
		Side:          input.Side,
		Price:         input.Price,
		Amount:        input.Amount,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.orders[order.ID] = order
	return *order
}

func (s *Store) GetOrder(id int64) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, false
	}
	return *order, true
}

// CancelOrder marks a resting order cancelled. Orders that already completed
// are left alone and reported as not cancellable.
func (s *Store) CancelOrder(id int64) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, false
	}
	if order.Status != models.OrderStatusOpen && order.Status != models.OrderStatusPartial {
		return models.Order{}, false
	}
	order.Status = models.OrderStatusCancelled
	order.UpdatedAt = s.now()
	return *order, true
}

func (s *Store) OrdersByUser(userID int64) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]models.Order, 0)
	for _, order := range s.orders {
		if order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders
}

// OrdersByPair returns orders for a pair ordered by id. An empty status
// matches every order.
func (s *Store) OrdersByPair(pairID int64, status string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]models.Order, 0)
	for _, order := range s.orders {
		if order.TradingPairID != pairID {
			continue
		}
		if status != "" && order.Status != status {
			continue
		}
		orders = append(orders, *order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders
}
