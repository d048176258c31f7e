package seed

import (
	"time"

	"tokensite/internal/store"
)

// Apply loads the reference data every fresh store needs: the reward tier
// table (always including a zero-point tier so tier derivation has a floor),
// the token's trading pairs, and a few published articles for the news feed.
func Apply(st *store.Store) {
	st.CreateRewardsTier(store.RewardsTierInput{
		Name:               "Bronze",
		PointsRequired:     0,
		TradingFeeDiscount: 0,
		AdditionalBenefits: []string{"Newsletter access"},
		Icon:               "bronze",
	})
	st.CreateRewardsTier(store.RewardsTierInput{
		Name:               "Silver",
		PointsRequired:     1000,
		TradingFeeDiscount: 0.05,
		AdditionalBenefits: []string{"Priority support"},
		Icon:               "silver",
	})
	st.CreateRewardsTier(store.RewardsTierInput{
		Name:               "Gold",
		PointsRequired:     5000,
		TradingFeeDiscount: 0.15,
		AdditionalBenefits: []string{"Priority support", "Early feature access"},
		Icon:               "gold",
	})
	st.CreateRewardsTier(store.RewardsTierInput{
		Name:               "Platinum",
		PointsRequired:     20000,
		TradingFeeDiscount: 0.30,
		AdditionalBenefits: []string{"Priority support", "Early feature access", "Exclusive airdrops"},
		Icon:               "platinum",
	})

	st.CreatePair(store.PairInput{
		BaseAsset:      "TNE",
		QuoteAsset:     "USDT",
		PairSymbol:     "TNE/USDT",
		MinTradeAmount: 10,
		MaxTradeAmount: 1000000,
		TradingFee:     0.002,
		IsActive:       true,
	})
	st.CreatePair(store.PairInput{
		BaseAsset:      "TNE",
		QuoteAsset:     "SOL",
		PairSymbol:     "TNE/SOL",
		MinTradeAmount: 100,
		MaxTradeAmount: 500000,
		TradingFee:     0.002,
		IsActive:       true,
	})
	st.CreatePair(store.PairInput{
		BaseAsset:      "TNE",
		QuoteAsset:     "BTC",
		PairSymbol:     "TNE/BTC",
		MinTradeAmount: 1000,
		MaxTradeAmount: 0,
		TradingFee:     0.001,
		IsActive:       false,
	})

	now := time.Now()
	st.CreateArticle(store.ArticleInput{
		Title:       "TNE token launch",
		Content:     "The TNE token is live. Trading opens on all listed pairs today.",
		Summary:     "TNE is live.",
		Author:      "TNE Team",
		PublishDate: now.Add(-72 * time.Hour),
		IsPublished: true,
		Tags:        []string{"launch", "announcement"},
	})
	st.CreateArticle(store.ArticleInput{
		Title:       "Rewards program explained",
		Content:     "Earn points for every trade and climb from Bronze to Platinum.",
		Summary:     "How tiers and points work.",
		Author:      "TNE Team",
		PublishDate: now.Add(-24 * time.Hour),
		IsPublished: true,
		Tags:        []string{"rewards"},
	})
	st.CreateArticle(store.ArticleInput{
		Title:       "Roadmap draft",
		Content:     "Internal draft, not ready for the public feed.",
		Summary:     "Draft.",
		Author:      "TNE Team",
		PublishDate: now,
		IsPublished: false,
		Tags:        []string{"roadmap"},
	})
}
