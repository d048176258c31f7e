package store

import (
	"sync"
	"time"

	"tokensite/internal/models"
)

// Store keeps every entity in process memory, one map per entity type keyed
// by an auto-incrementing id. A single instance is constructed at startup and
// injected into handlers and services; all state is lost on restart.
//
// One mutex guards every map so that multi-entity mutations (trade
// application touching two orders and two users) happen in a single critical
// section and concurrent requests never observe partially applied state.
type Store struct {
	mu sync.Mutex

	users       map[int64]*models.User
	pairs       map[int64]*models.TradingPair
	orders      map[int64]*models.Order
	trades      map[int64]*models.Trade
	events      map[int64]*models.RewardsEvent
	tiers       map[int64]*models.RewardsTier
	articles    map[int64]*models.NewsArticle
	subscribers map[int64]*models.Subscriber

	userSeq       int64
	pairSeq       int64
	orderSeq      int64
	tradeSeq      int64
	eventSeq      int64
	tierSeq       int64
	articleSeq    int64
	subscriberSeq int64

	now func() time.Time
}

func New() *Store {
	return &Store{
		users:       make(map[int64]*models.User),
		pairs:       make(map[int64]*models.TradingPair),
		orders:      make(map[int64]*models.Order),
		trades:      make(map[int64]*models.Trade),
		events:      make(map[int64]*models.RewardsEvent),
		tiers:       make(map[int64]*models.RewardsTier),
		articles:    make(map[int64]*models.NewsArticle),
		subscribers: make(map[int64]*models.Subscriber),
		now:         time.Now,
	}
}

func nextID(seq *int64) int64 {
	*seq++
	return *seq
}
