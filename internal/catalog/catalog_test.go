package catalog_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/opbitpredict/bitpredict-bot/internal/catalog"
)

func TestProbabilitiesSumToOne(t *testing.T) {
	one := decimal.NewFromInt(1)
	for _, m := range catalog.New().Markets("") {
		if sum := m.Yes.Add(m.No); !sum.Equal(one) {
			t.Errorf("market %s: yes+no = %s, want exactly 1", m.ID, sum)
		}
	}
}

func TestFind(t *testing.T) {
	cat := catalog.New()

	m, ok := cat.Find("btc-100k-2026")
	if !ok {
		t.Fatal("Find(btc-100k-2026) not found")
	}
	if m.Category != catalog.CategoryCrypto {
		t.Errorf("category = %s, want Crypto", m.Category)
	}

	if _, ok := cat.Find("does-not-exist"); ok {
		t.Error("Find(does-not-exist) should not be found")
	}
}

func TestMarketsFilterPurityAndOrder(t *testing.T) {
	cat := catalog.New()

	sports := cat.Markets(catalog.CategorySports)
	if len(sports) != 2 {
		t.Fatalf("Sports markets = %d, want 2", len(sports))
	}
	for _, m := range sports {
		if m.Category != catalog.CategorySports {
			t.Errorf("filter leaked %s market %s", m.Category, m.ID)
		}
	}
	// Catalog definition order, not alphabetical.
	if sports[0].ID != "champions-league" || sports[1].ID != "world-cup-2026" {
		t.Errorf("Sports order = [%s, %s], want definition order", sports[0].ID, sports[1].ID)
	}
}

func TestMarketsUnknownCategoryIsEmpty(t *testing.T) {
	if got := catalog.New().Markets(catalog.Category("Weather")); len(got) != 0 {
		t.Errorf("unknown category returned %d markets, want 0", len(got))
	}
}

func TestMarketsAllPreservesDefinitionOrder(t *testing.T) {
	all := catalog.New().Markets("")
	if len(all) != 12 {
		t.Fatalf("catalog size = %d, want 12", len(all))
	}
	if all[0].ID != "btc-100k-2026" || all[11].ID != "world-cup-2026" {
		t.Errorf("order violated: first=%s last=%s", all[0].ID, all[11].ID)
	}
}

// Market ids travel inside callback payloads ("market_<id>"), so they must
// not contain the payload delimiter or whitespace.
func TestMarketIDsCallbackSafe(t *testing.T) {
	for _, m := range catalog.New().Markets("") {
		if strings.ContainsAny(m.ID, "_ \t\n") {
			t.Errorf("market id %q contains callback-unsafe characters", m.ID)
		}
	}
}

func TestHeadline(t *testing.T) {
	if got := catalog.New().Headline().ID; got != "btc-100k-2026" {
		t.Errorf("Headline() = %s, want btc-100k-2026", got)
	}
}

func TestAnalysisFallback(t *testing.T) {
	cat := catalog.New()

	if a := cat.AnalysisFor("btc-100k-2026"); a.Signal != catalog.SignalBullish {
		t.Errorf("btc-100k-2026 signal = %s, want BULLISH", a.Signal)
	}

	def := cat.AnalysisFor("nft-comeback")
	if def.Signal != catalog.SignalNeutral || def.Confidence != 50 {
		t.Errorf("default analysis = %s/%d, want NEUTRAL/50", def.Signal, def.Confidence)
	}
	if len(def.Reasoning) == 0 {
		t.Error("default analysis has empty reasoning")
	}
}

func TestAchievementGroupOrder(t *testing.T) {
	groups := catalog.New().AchievementGroups()

	want := []catalog.AchievementCategory{
		catalog.AchievementTrading,
		catalog.AchievementMilestone,
		catalog.AchievementExplorer,
		catalog.AchievementSocial,
	}
	if len(groups) != len(want) {
		t.Fatalf("achievement groups = %d, want %d", len(groups), len(want))
	}
	total := 0
	for i, g := range groups {
		if g.Category != want[i] {
			t.Errorf("group[%d] = %s, want %s", i, g.Category, want[i])
		}
		for _, a := range g.Achievements {
			if a.Category != g.Category {
				t.Errorf("achievement %s grouped under %s", a.ID, g.Category)
			}
			if a.XP <= 0 {
				t.Errorf("achievement %s has non-positive XP", a.ID)
			}
		}
		total += len(g.Achievements)
	}
	if total != 12 {
		t.Errorf("achievements total = %d, want 12", total)
	}
}

func TestQuestGroupOrder(t *testing.T) {
	groups := catalog.New().QuestGroups()

	want := []catalog.Cadence{catalog.CadenceOnetime, catalog.CadenceDaily, catalog.CadenceWeekly}
	if len(groups) != len(want) {
		t.Fatalf("quest groups = %d, want %d", len(groups), len(want))
	}
	total := 0
	for i, g := range groups {
		if g.Cadence != want[i] {
			t.Errorf("group[%d] = %s, want %s", i, g.Cadence, want[i])
		}
		for _, q := range g.Quests {
			if q.Cadence != g.Cadence {
				t.Errorf("quest %s grouped under %s", q.ID, g.Cadence)
			}
			if q.XP <= 0 {
				t.Errorf("quest %s has non-positive XP", q.ID)
			}
		}
		total += len(g.Quests)
	}
	if total != 8 {
		t.Errorf("quests total = %d, want 8", total)
	}
}

func TestAggregates(t *testing.T) {
	cat := catalog.New()

	var vol, liq int64
	for _, m := range cat.Markets("") {
		vol += m.Volume
		liq += m.Liquidity
	}
	if got := cat.TotalVolume(); got != vol {
		t.Errorf("TotalVolume = %d, want %d", got, vol)
	}
	if got := cat.TotalLiquidity(); got != liq {
		t.Errorf("TotalLiquidity = %d, want %d", got, liq)
	}
}

func TestCategoriesClosedSet(t *testing.T) {
	cats := catalog.Categories()
	if len(cats) != 5 {
		t.Fatalf("categories = %d, want 5", len(cats))
	}
	for _, c := range cats {
		if c.Emoji() == "" {
			t.Errorf("category %s has no display glyph", c)
		}
	}
	// Every market belongs to the closed set.
	valid := map[catalog.Category]bool{}
	for _, c := range cats {
		valid[c] = true
	}
	for _, m := range catalog.New().Markets("") {
		if !valid[m.Category] {
			t.Errorf("market %s has unknown category %s", m.ID, m.Category)
		}
	}
}
