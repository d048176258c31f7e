package models

import "time"

const (
	OrderTypeMarket = "market"
	OrderTypeLimit  = "limit"

	OrderSideBuy  = "buy"
	OrderSideSell = "sell"

	OrderStatusOpen      = "open"
	OrderStatusPartial   = "partial"
	OrderStatusFilled    = "filled"
	OrderStatusCancelled = "cancelled"
)

type User struct {
	ID                 int64      `json:"id"`
	Username           string     `json:"username"`
	Email              string     `json:"email"`
	Password           string     `json:"-"`
	WalletAddress      string     `json:"wallet_address,omitempty"`
	TotalTradingVolume float64    `json:"total_trading_volume"`
	RewardsPoints      int64      `json:"rewards_points"`
	ReferralCode       string     `json:"referral_code"`
	TwoFactorEnabled   bool       `json:"two_factor_enabled"`
	ResetToken         string     `json:"-"`
	ResetTokenExpiry   *time.Time `json:"-"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type TradingPair struct {
	ID             int64     `json:"id"`
	BaseAsset      string    `json:"base_asset"`
	QuoteAsset     string    `json:"quote_asset"`
	PairSymbol     string    `json:"pair_symbol"`
	MinTradeAmount float64   `json:"min_trade_amount"`
	MaxTradeAmount float64   `json:"max_trade_amount"`
	TradingFee     float64   `json:"trading_fee"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Order struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	TradingPairID int64     `json:"trading_pair_id"`
	Type          string    `json:"type"`
	Side          string    `json:"side"`
	Price         float64   `json:"price"`
	Amount        float64   `json:"amount"`
	Filled        float64   `json:"filled"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Trade struct {
	ID            int64     `json:"id"`
	BuyOrderID    int64     `json:"buy_order_id"`
	SellOrderID   int64     `json:"sell_order_id"`
	TradingPairID int64     `json:"trading_pair_id"`
	Price         float64   `json:"price"`
	Amount        float64   `json:"amount"`
	TotalValue    float64   `json:"total_value"`
	Fee           float64   `json:"fee"`
	Timestamp     time.Time `json:"timestamp"`
}

type RewardsEvent struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	EventType   string    `json:"event_type"`
	Points      int64     `json:"points"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type RewardsTier struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	PointsRequired     int64    `json:"points_required"`
	TradingFeeDiscount float64  `json:"trading_fee_discount"`
	AdditionalBenefits []string `json:"additional_benefits"`
	Icon               string   `json:"icon"`
}

type NewsArticle struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Summary     string    `json:"summary"`
	Author      string    `json:"author"`
	PublishDate time.Time `json:"publish_date"`
	IsPublished bool      `json:"is_published"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Subscriber struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
	IsActive     bool      `json:"is_active"`
}
