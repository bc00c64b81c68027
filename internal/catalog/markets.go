package catalog

import "github.com/shopspring/decimal"

// markets mirrors the frontend market table (src/data/markets.ts). Order is
// a display contract: lists render in definition order.
var markets = []Market{
	{
		ID:        "btc-100k-2026",
		Question:  "Will Bitcoin reach $150,000 by end of 2026?",
		Category:  CategoryCrypto,
		Yes:       decimal.NewFromFloat(0.72),
		Volume:    245000,
		Liquidity: 89000,
		EndDate:   "2026-12-31",
		Tags:      []string{"bitcoin", "price", "bullish"},
		Emoji:     "📈",
	},
	{
		ID:        "eth-etf-spot",
		Question:  "Will Ethereum spot ETF surpass $50B AUM in 2026?",
		Category:  CategoryCrypto,
		Yes:       decimal.NewFromFloat(0.45),
		Volume:    178000,
		Liquidity: 62000,
		EndDate:   "2026-12-31",
		Tags:      []string{"ethereum", "etf"},
		Emoji:     "💰",
	},
	{
		ID:        "us-election-2026",
		Question:  "Will Republicans win the 2026 US midterm elections?",
		Category:  CategoryPolitics,
		Yes:       decimal.NewFromFloat(0.58),
		Volume:    520000,
		Liquidity: 145000,
		EndDate:   "2026-11-03",
		Tags:      []string{"election", "usa"},
		Emoji:     "🗳️",
	},
	{
		ID:        "opnet-adoption",
		Question:  "Will OP_NET process 1M+ transactions by Q4 2026?",
		Category:  CategoryCrypto,
		Yes:       decimal.NewFromFloat(0.65),
		Volume:    92000,
		Liquidity: 34000,
		EndDate:   "2026-12-31",
		Tags:      []string{"opnet", "bitcoin"},
		Emoji:     "🚀",
	},
	{
		ID:        "ai-agi-2027",
		Question:  "Will AGI be achieved before 2028?",
		Category:  CategoryTech,
		Yes:       decimal.NewFromFloat(0.18),
		Volume:    890000,
		Liquidity: 210000,
		EndDate:   "2027-12-31",
		Tags:      []string{"ai", "agi"},
		Emoji:     "🤖",
	},
	{
		ID:        "champions-league",
		Question:  "Will Real Madrid win Champions League 2026?",
		Category:  CategorySports,
		Yes:       decimal.NewFromFloat(0.32),
		Volume:    340000,
		Liquidity: 95000,
		EndDate:   "2026-06-01",
		Tags:      []string{"football", "ucl"},
		Emoji:     "⚽",
	},
	{
		ID:        "btc-dominance",
		Question:  "Will BTC dominance exceed 65% in 2026?",
		Category:  CategoryCrypto,
		Yes:       decimal.NewFromFloat(0.54),
		Volume:    156000,
		Liquidity: 48000,
		EndDate:   "2026-12-31",
		Tags:      []string{"bitcoin", "dominance"},
		Emoji:     "👑",
	},
	{
		ID:        "mars-mission",
		Question:  "Will SpaceX launch Starship to Mars orbit by 2027?",
		Category:  CategoryTech,
		Yes:       decimal.NewFromFloat(0.25),
		Volume:    430000,
		Liquidity: 120000,
		EndDate:   "2027-12-31",
		Tags:      []string{"spacex", "mars"},
		Emoji:     "🛸",
	},
	{
		ID:        "nft-comeback",
		Question:  "Will NFT market cap exceed $100B in 2026?",
		Category:  CategoryCulture,
		Yes:       decimal.NewFromFloat(0.15),
		Volume:    67000,
		Liquidity: 22000,
		EndDate:   "2026-12-31",
		Tags:      []string{"nft", "market"},
		Emoji:     "🎨",
	},
	{
		ID:        "fed-rate-cut",
		Question:  "Will the Fed cut rates below 3% by end of 2026?",
		Category:  CategoryPolitics,
		Yes:       decimal.NewFromFloat(0.41),
		Volume:    710000,
		Liquidity: 195000,
		EndDate:   "2026-12-31",
		Tags:      []string{"fed", "rates"},
		Emoji:     "🏦",
	},
	{
		ID:        "solana-flip-eth",
		Question:  "Will Solana flip Ethereum in daily transactions by 2027?",
		Category:  CategoryCrypto,
		Yes:       decimal.NewFromFloat(0.38),
		Volume:    198000,
		Liquidity: 56000,
		EndDate:   "2027-06-30",
		Tags:      []string{"solana", "ethereum"},
		Emoji:     "⚡",
	},
	{
		ID:        "world-cup-2026",
		Question:  "Will Brazil win the 2026 FIFA World Cup?",
		Category:  CategorySports,
		Yes:       decimal.NewFromFloat(0.22),
		Volume:    1200000,
		Liquidity: 320000,
		EndDate:   "2026-07-19",
		Tags:      []string{"football", "world-cup"},
		Emoji:     "🏆",
	},
}
