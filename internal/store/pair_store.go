package store

import (
	"sort"

	"tokensite/internal/models"
)

type PairInput struct {
	BaseAsset      string
	QuoteAsset     string
	PairSymbol     string
	MinTradeAmount float64
	MaxTradeAmount float64
	TradingFee     float64
	IsActive       bool
}

type PairUpdate struct {
	MinTradeAmount *float64
	MaxTradeAmount *float64
	TradingFee     *float64
	IsActive       *bool
}

func (s *Store) CreatePair(input PairInput) models.TradingPair {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	pair := &models.TradingPair{
		ID:             nextID(&s.pairSeq),
		BaseAsset:      input.BaseAsset,
		QuoteAsset:     input.QuoteAsset,
		PairSymbol:     input.PairSymbol,
		MinTradeAmount: input.MinTradeAmount,
		MaxTradeAmount: input.MaxTradeAmount,
		TradingFee:     input.TradingFee,
		IsActive:       input.IsActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.pairs[pair.ID] = pair
	return *pair
}

func (s *Store) GetPair(id int64) (models.TradingPair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pair, ok := s.pairs[id]
	if !ok {
		return models.TradingPair{}, false
	}
	return *pair, true
}

func (s *Store) UpdatePair(id int64, update PairUpdate) (models.TradingPair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pair, ok := s.pairs[id]
	if !ok {
		return models.TradingPair{}, false
	}
	if update.MinTradeAmount != nil {
		pair.MinTradeAmount = *update.MinTradeAmount
	}
	if update.MaxTradeAmount != nil {
		pair.MaxTradeAmount = *update.MaxTradeAmount
	}
	if update.TradingFee != nil {
		pair.TradingFee = *update.TradingFee
	}
	if update.IsActive != nil {
		pair.IsActive = *update.IsActive
	}
	pair.UpdatedAt = s.now()
	return *pair, true
}

func (s *Store) FindPairBySymbol(symbol string) (models.TradingPair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, pair := range s.pairs {
		if pair.PairSymbol == symbol {
			return *pair, true
		}
	}
	return models.TradingPair{}, false
}

// ListPairs returns pairs ordered by id, optionally restricted to active ones.
func (s *Store) ListPairs(activeOnly bool) []models.TradingPair {
	s.mu.Lock()
	defer s.mu.Unlock()
	pairs := make([]models.TradingPair, 0, len(s.pairs))
	for _, pair := range s.pairs {
		if activeOnly && !pair.IsActive {
			continue
		}
		pairs = append(pairs, *pair)
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].ID < pairs[j].ID })
	return pairs
}
