package bot

import (
	"context"
	"strings"

	"github.com/opbitpredict/bitpredict-bot/internal/catalog"
	"github.com/opbitpredict/bitpredict-bot/internal/opnet"
	"github.com/opbitpredict/bitpredict-bot/internal/view"
)

// ═══════════════════════════════════════════════════════════════════════════════
// DISPATCHER - Commands and callback payloads → rendered pages
// ═══════════════════════════════════════════════════════════════════════════════
//
// Every dispatch is stateless and idempotent: the inbound token fully
// determines the rendered page (plus at most one best-effort RPC call for
// stats/balance). Callback payloads are decoded into a closed action set at
// the boundary so routing stays exhaustive instead of string-suffix-driven.
//
// ═══════════════════════════════════════════════════════════════════════════════

type actionKind int

const (
	actionNone actionKind = iota
	actionMarkets
	actionMarket
	actionAnalysis
	actionStats
	actionHow
	actionAchievements
	actionQuests
)

// action is a decoded callback payload. arg carries the category name for
// actionMarkets ("" = all) or the market id for actionMarket/actionAnalysis
// ("" = headline market).
type action struct {
	kind actionKind
	arg  string
}

// parseCallback decodes an inline-button payload. Unrecognized payloads map
// to actionNone, which the handler treats as a silent no-op.
func parseCallback(data string) action {
	switch data {
	case view.CallbackMarketsAll:
		return action{kind: actionMarkets}
	case view.CallbackAIAnalysis:
		return action{kind: actionAnalysis}
	case view.CallbackStats:
		return action{kind: actionStats}
	case view.CallbackHow:
		return action{kind: actionHow}
	case view.CallbackAchievements:
		return action{kind: actionAchievements}
	case view.CallbackQuests:
		return action{kind: actionQuests}
	}

	switch {
	case strings.HasPrefix(data, view.CallbackMarketsPrefix):
		return action{kind: actionMarkets, arg: strings.TrimPrefix(data, view.CallbackMarketsPrefix)}
	case strings.HasPrefix(data, view.CallbackMarketPrefix):
		return action{kind: actionMarket, arg: strings.TrimPrefix(data, view.CallbackMarketPrefix)}
	case strings.HasPrefix(data, view.CallbackAIPrefix):
		return action{kind: actionAnalysis, arg: strings.TrimPrefix(data, view.CallbackAIPrefix)}
	}

	return action{kind: actionNone}
}

// Dispatcher routes inbound commands and callbacks to the matching renderer.
// It holds only read-only collaborators and is safe for concurrent use.
type Dispatcher struct {
	cat   *catalog.Catalog
	views *view.Renderer
	chain *opnet.Client
}

// NewDispatcher wires the catalog, renderer and RPC gateway together.
func NewDispatcher(cat *catalog.Catalog, views *view.Renderer, chain *opnet.Client) *Dispatcher {
	return &Dispatcher{cat: cat, views: views, chain: chain}
}

// PageForCommand maps a bot command (case-sensitive, without the slash) to a
// page. ok is false for commands outside the surface.
func (d *Dispatcher) PageForCommand(ctx context.Context, cmd, args string) (view.Page, bool) {
	switch cmd {
	case "start":
		return d.views.Welcome(), true
	case "help":
		return d.views.Help(), true
	case "markets":
		return d.views.MarketList(""), true
	case "crypto":
		return d.views.MarketList(catalog.CategoryCrypto), true
	case "politics":
		return d.views.MarketList(catalog.CategoryPolitics), true
	case "sports":
		return d.views.MarketList(catalog.CategorySports), true
	case "tech":
		return d.views.MarketList(catalog.CategoryTech), true
	case "market":
		id := firstField(args)
		if id == "" {
			return d.views.MarketUsage(), true
		}
		return d.marketPage(id), true
	case "ai":
		return d.analysisPage(firstField(args)), true
	case "balance":
		address := firstField(args)
		if address == "" {
			return d.views.BalanceUsage(), true
		}
		sats, ok := d.chain.Balance(ctx, address)
		return d.views.Balance(address, sats, ok), true
	case "stats":
		height, ok := d.chain.BlockHeight(ctx)
		return d.views.Stats(height, ok), true
	case "achievements":
		return d.views.Achievements(), true
	case "quests":
		return d.views.Quests(), true
	case "about":
		return d.views.About(), true
	}
	return view.Page{}, false
}

// PageForCallback maps an inline-button payload to a page. ok is false for
// unrecognized payloads, which must stay silent no-ops.
func (d *Dispatcher) PageForCallback(ctx context.Context, data string) (view.Page, bool) {
	act := parseCallback(data)
	switch act.kind {
	case actionMarkets:
		return d.views.MarketList(catalog.Category(act.arg)), true
	case actionMarket:
		return d.marketPage(act.arg), true
	case actionAnalysis:
		return d.analysisPage(act.arg), true
	case actionStats:
		height, ok := d.chain.BlockHeight(ctx)
		return d.views.Stats(height, ok), true
	case actionHow:
		return d.views.HowItWorks(), true
	case actionAchievements:
		return d.views.Achievements(), true
	case actionQuests:
		return d.views.Quests(), true
	}
	return view.Page{}, false
}

func (d *Dispatcher) marketPage(id string) view.Page {
	m, ok := d.cat.Find(id)
	if !ok {
		return d.views.MarketNotFound(id)
	}
	return d.views.MarketDetail(m)
}

// analysisPage defaults to the headline market when no id is given (bare /ai
// or the main-menu AI button).
func (d *Dispatcher) analysisPage(id string) view.Page {
	if id == "" {
		return d.views.Analysis(d.cat.Headline())
	}
	m, ok := d.cat.Find(id)
	if !ok {
		return d.views.MarketNotFound(id)
	}
	return d.views.Analysis(m)
}

func firstField(args string) string {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
