package market

import (
	"hash/fnv"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Source synthesizes market data for the simulated trading interface. Prices,
// depth and candles are fabricated per request; nothing is recorded. Each
// symbol gets a stable base price derived from its name so repeated requests
// hover around the same level.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

type Level struct {
	Price  float64 `json:"price"`
	Amount float64 `json:"amount"`
}

type OrderBook struct {
	Symbol string  `json:"symbol"`
	Bids   []Level `json:"bids"`
	Asks   []Level `json:"asks"`
}

type Stats struct {
	Symbol    string  `json:"symbol"`
	LastPrice float64 `json:"last_price"`
	High24h   float64 `json:"high_24h"`
	Low24h    float64 `json:"low_24h"`
	Volume24h float64 `json:"volume_24h"`
	Change24h float64 `json:"change_24h"`
}

type Candle struct {
	OpenTime time.Time `json:"open_time"`
	Open     float64   `json:"open"`
	High     float64   `json:"high"`
	Low      float64   `json:"low"`
	Close    float64   `json:"close"`
	Volume   float64   `json:"volume"`
}

func NewSource() *Source {
	return &Source{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// BasePrice is the anchor price for a symbol, a pure function of its name.
func (s *Source) BasePrice(symbol string) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(symbol))
	// Spread anchors across roughly 0.10 .. 1050 with more symbols landing low.
	n := h.Sum32()
	return 0.1 + math.Pow(float64(n%1000)/1000, 3)*1050
}

// Price returns the current synthetic price: the anchor with up to ±1% jitter.
func (s *Source) Price(symbol string) float64 {
	base := s.BasePrice(symbol)
	s.mu.Lock()
	jitter := (s.rng.Float64()*2 - 1) * 0.01
	s.mu.Unlock()
	return round8(base * (1 + jitter))
}

// Book fabricates depth levels on both sides of the current price.
func (s *Source) Book(symbol string, depth int) OrderBook {
	if depth <= 0 {
		depth = 10
	}
	price := s.Price(symbol)
	book := OrderBook{
		Symbol: symbol,
		Bids:   make([]Level, 0, depth),
		Asks:   make([]Level, 0, depth),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 1; i <= depth; i++ {
		step := price * 0.001 * float64(i)
		book.Bids = append(book.Bids, Level{
			Price:  round8(price - step),
			Amount: round8(s.rng.Float64() * 1000),
		})
		book.Asks = append(book.Asks, Level{
			Price:  round8(price + step),
			Amount: round8(s.rng.Float64() * 1000),
		})
	}
	return book
}

// Stats24h fabricates a 24 hour summary around the current price.
func (s *Source) Stats24h(symbol string) Stats {
	price := s.Price(symbol)
	s.mu.Lock()
	defer s.mu.Unlock()
	high := price * (1 + s.rng.Float64()*0.05)
	low := price * (1 - s.rng.Float64()*0.05)
	return Stats{
		Symbol:    symbol,
		LastPrice: price,
		High24h:   round8(high),
		Low24h:    round8(low),
		Volume24h: round8(s.rng.Float64() * 5e6),
		Change24h: round8((s.rng.Float64()*2 - 1) * 10),
	}
}

// Candles fabricates an hourly OHLC history ending now, oldest first.
func (s *Source) Candles(symbol string, count int) []Candle {
	if count <= 0 {
		count = 24
	}
	price := s.BasePrice(symbol)
	end := time.Now().Truncate(time.Hour)
	candles := make([]Candle, 0, count)
	s.mu.Lock()
	defer s.mu.Unlock()
	open := price
	for i := count - 1; i >= 0; i-- {
		move := (s.rng.Float64()*2 - 1) * 0.02
		closePrice := open * (1 + move)
		high := math.Max(open, closePrice) * (1 + s.rng.Float64()*0.005)
		low := math.Min(open, closePrice) * (1 - s.rng.Float64()*0.005)
		candles = append(candles, Candle{
			OpenTime: end.Add(-time.Duration(i) * time.Hour),
			Open:     round8(open),
			High:     round8(high),
			Low:      round8(low),
			Close:    round8(closePrice),
			Volume:   round8(s.rng.Float64() * 100000),
		})
		open = closePrice
	}
	return candles
}

func round8(v float64) float64 {
	return math.Round(v*1e8) / 1e8
}
