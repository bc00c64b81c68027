package catalog

import (
	"github.com/shopspring/decimal"
)

// ═══════════════════════════════════════════════════════════════════════════════
// CATALOG - Static reference tables for BitPredict
// ═══════════════════════════════════════════════════════════════════════════════
//
// Everything here mirrors the on-chain market set published by the BitPredict
// contract. The tables are built once at startup and never mutated; display
// order follows definition order.
//
// ═══════════════════════════════════════════════════════════════════════════════

// Category is the closed set of market categories.
type Category string

const (
	CategoryCrypto   Category = "Crypto"
	CategoryPolitics Category = "Politics"
	CategorySports   Category = "Sports"
	CategoryTech     Category = "Tech"
	CategoryCulture  Category = "Culture"
)

// categoryOrder fixes the display order of the category filter rows.
var categoryOrder = []Category{
	CategoryCrypto,
	CategoryPolitics,
	CategorySports,
	CategoryTech,
	CategoryCulture,
}

var categoryEmoji = map[Category]string{
	CategoryCrypto:   "💰",
	CategoryPolitics: "🗳️",
	CategorySports:   "⚽",
	CategoryTech:     "🤖",
	CategoryCulture:  "🎨",
}

// Emoji returns the display glyph for the category.
func (c Category) Emoji() string {
	return categoryEmoji[c]
}

// Categories returns the category set in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Market is a binary-outcome prediction market. Yes and No always sum to
// exactly 1; ID is the sole lookup key and stays free of callback delimiter
// characters.
type Market struct {
	ID        string
	Question  string
	Category  Category
	Yes       decimal.Decimal
	No        decimal.Decimal
	Volume    int64 // sats
	Liquidity int64 // sats
	EndDate   string
	Tags      []string
	Emoji     string
}

// Catalog holds the read-only reference tables. Built once via New and
// shared by reference; safe for concurrent reads.
type Catalog struct {
	markets      []Market
	analyses     map[string]Analysis
	achievements []Achievement
	quests       []Quest
}

// New builds the catalog from the static definitions. The NO probability is
// derived from YES so the pair always sums to exactly 1.
func New() *Catalog {
	one := decimal.NewFromInt(1)
	ms := make([]Market, len(markets))
	copy(ms, markets)
	for i := range ms {
		ms[i].No = one.Sub(ms[i].Yes)
	}
	return &Catalog{
		markets:      ms,
		analyses:     analyses,
		achievements: achievements,
		quests:       quests,
	}
}

// Find looks a market up by id.
func (c *Catalog) Find(id string) (Market, bool) {
	for _, m := range c.markets {
		if m.ID == id {
			return m, true
		}
	}
	return Market{}, false
}

// Markets returns markets in definition order. An empty filter returns the
// full set; an unknown category returns an empty slice.
func (c *Catalog) Markets(filter Category) []Market {
	if filter == "" {
		out := make([]Market, len(c.markets))
		copy(out, c.markets)
		return out
	}
	out := []Market{}
	for _, m := range c.markets {
		if m.Category == filter {
			out = append(out, m)
		}
	}
	return out
}

// Headline returns the first catalog market, used when no id is given.
func (c *Catalog) Headline() Market {
	return c.markets[0]
}

// Len returns the number of active markets.
func (c *Catalog) Len() int {
	return len(c.markets)
}

// TotalVolume sums volume across all markets, in sats.
func (c *Catalog) TotalVolume() int64 {
	var total int64
	for _, m := range c.markets {
		total += m.Volume
	}
	return total
}

// TotalLiquidity sums liquidity across all markets, in sats.
func (c *Catalog) TotalLiquidity() int64 {
	var total int64
	for _, m := range c.markets {
		total += m.Liquidity
	}
	return total
}
