package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/opbitpredict/bitpredict-bot/internal/catalog"
	"github.com/opbitpredict/bitpredict-bot/internal/format"
	"github.com/opbitpredict/bitpredict-bot/internal/opnet"
	"github.com/opbitpredict/bitpredict-bot/internal/view"
)

func testDispatcher(t *testing.T, chain *opnet.Client) (*Dispatcher, *catalog.Catalog) {
	t.Helper()
	cat := catalog.New()
	views := view.NewRenderer(cat, view.Links{
		WebApp: "https://app.example.org/",
		RPC:    "https://rpc.example.org",
	})
	return NewDispatcher(cat, views, chain), cat
}

// stubChain answers every RPC call with the given raw result.
func stubChain(t *testing.T, result string) *opnet.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req struct {
			ID json.RawMessage `json:"id"`
		}
		_ = json.Unmarshal(body, &req)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":%s}`, req.ID, result)
	}))
	t.Cleanup(srv.Close)

	c, err := opnet.NewClient(srv.URL, 0)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestParseCallback(t *testing.T) {
	cases := []struct {
		data string
		want action
	}{
		{"markets_all", action{kind: actionMarkets}},
		{"markets_Sports", action{kind: actionMarkets, arg: "Sports"}},
		{"market_btc-100k-2026", action{kind: actionMarket, arg: "btc-100k-2026"}},
		{"ai_btc-100k-2026", action{kind: actionAnalysis, arg: "btc-100k-2026"}},
		{"ai_analysis", action{kind: actionAnalysis}},
		{"stats", action{kind: actionStats}},
		{"how", action{kind: actionHow}},
		{"achievements", action{kind: actionAchievements}},
		{"quests", action{kind: actionQuests}},
		{"bogus", action{kind: actionNone}},
		{"", action{kind: actionNone}},
		{"market", action{kind: actionNone}},
	}

	for _, tc := range cases {
		if got := parseCallback(tc.data); got != tc.want {
			t.Errorf("parseCallback(%q) = %+v, want %+v", tc.data, got, tc.want)
		}
	}
}

// A button press and the equivalent command must render identical text.
func TestCallbackCommandParity(t *testing.T) {
	d, _ := testDispatcher(t, nil)
	ctx := context.Background()

	cmdPage, ok := d.PageForCommand(ctx, "market", "btc-100k-2026")
	if !ok {
		t.Fatal("market command not dispatched")
	}
	cbPage, ok := d.PageForCallback(ctx, "market_btc-100k-2026")
	if !ok {
		t.Fatal("market_ callback not dispatched")
	}
	if cmdPage.Text != cbPage.Text {
		t.Error("command and callback rendered different market detail text")
	}

	aiCmd, _ := d.PageForCommand(ctx, "ai", "ai-agi-2027")
	aiCb, _ := d.PageForCallback(ctx, "ai_ai-agi-2027")
	if aiCmd.Text != aiCb.Text {
		t.Error("command and callback rendered different analysis text")
	}
}

func TestCallbackCategoryFilter(t *testing.T) {
	d, cat := testDispatcher(t, nil)

	page, ok := d.PageForCallback(context.Background(), "markets_Sports")
	if !ok {
		t.Fatal("markets_Sports not dispatched")
	}
	for _, m := range cat.Markets("") {
		contains := strings.Contains(page.Text, format.Escape(m.Question))
		if m.Category == catalog.CategorySports && !contains {
			t.Errorf("Sports screen missing %s", m.ID)
		}
		if m.Category != catalog.CategorySports && contains {
			t.Errorf("Sports screen leaked %s", m.ID)
		}
	}
}

func TestUnknownCallbackIsNoOp(t *testing.T) {
	d, _ := testDispatcher(t, nil)

	if _, ok := d.PageForCallback(context.Background(), "delete_everything"); ok {
		t.Error("unrecognized payload must be dropped, not dispatched")
	}
}

func TestUnknownMarketIDRendersNotFound(t *testing.T) {
	d, _ := testDispatcher(t, nil)
	ctx := context.Background()

	cmd, ok := d.PageForCommand(ctx, "market", "does-not-exist")
	if !ok || !strings.Contains(cmd.Text, "not found") {
		t.Errorf("command with unknown id = %q, want not-found page", cmd.Text)
	}

	cb, ok := d.PageForCallback(ctx, "market_does-not-exist")
	if !ok || !strings.Contains(cb.Text, "not found") {
		t.Errorf("callback with unknown id = %q, want not-found page", cb.Text)
	}
}

func TestMissingArgumentRendersUsage(t *testing.T) {
	d, _ := testDispatcher(t, nil)
	ctx := context.Background()

	market, ok := d.PageForCommand(ctx, "market", "")
	if !ok || !strings.Contains(market.Text, "Usage:") {
		t.Errorf("/market without id = %q, want usage hint", market.Text)
	}

	balance, ok := d.PageForCommand(ctx, "balance", "  ")
	if !ok || !strings.Contains(balance.Text, "Usage:") {
		t.Errorf("/balance without address = %q, want usage hint", balance.Text)
	}
}

func TestBareAIDefaultsToHeadline(t *testing.T) {
	d, cat := testDispatcher(t, nil)
	ctx := context.Background()

	page, ok := d.PageForCommand(ctx, "ai", "")
	if !ok {
		t.Fatal("bare /ai not dispatched")
	}
	if !strings.Contains(page.Text, format.Escape(cat.Headline().Question)) {
		t.Error("bare /ai should analyse the headline market")
	}

	menu, _ := d.PageForCallback(ctx, "ai_analysis")
	if menu.Text != page.Text {
		t.Error("ai_analysis callback should match bare /ai")
	}
}

func TestCommandsAreCaseSensitive(t *testing.T) {
	d, _ := testDispatcher(t, nil)

	if _, ok := d.PageForCommand(context.Background(), "Markets", ""); ok {
		t.Error("command tokens are case-sensitive; 'Markets' must not dispatch")
	}
}

func TestStatsUsesGateway(t *testing.T) {
	d, _ := testDispatcher(t, stubChain(t, `"0x64"`))

	page, ok := d.PageForCommand(context.Background(), "stats", "")
	if !ok {
		t.Fatal("stats not dispatched")
	}
	if !strings.Contains(page.Text, "100") || !strings.Contains(page.Text, "LIVE") {
		t.Errorf("stats page = %q, want live height 100", page.Text)
	}
}

func TestBalanceUsesGateway(t *testing.T) {
	d, _ := testDispatcher(t, stubChain(t, `245000`))

	page, ok := d.PageForCommand(context.Background(), "balance", "bcrt1qexample extra-ignored")
	if !ok {
		t.Fatal("balance not dispatched")
	}
	if !strings.Contains(page.Text, "245,000") {
		t.Errorf("balance page = %q, want 245,000 sats", page.Text)
	}
}

func TestStatsDegradesWhenNodeDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	chain, err := opnet.NewClient(srv.URL, 0)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(chain.Close)

	d, _ := testDispatcher(t, chain)

	page, ok := d.PageForCommand(context.Background(), "stats", "")
	if !ok {
		t.Fatal("stats not dispatched")
	}
	if !strings.Contains(page.Text, "CONNECTING") {
		t.Errorf("stats with dead node = %q, want connecting placeholder", page.Text)
	}
}
