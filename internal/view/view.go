// Package view renders each bot screen as a (text, keyboard) pair. Every
// renderer is a pure function of already-resolved catalog and gateway data;
// all catalog-derived free text passes through format.Escape before being
// embedded.
package view

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/opbitpredict/bitpredict-bot/internal/catalog"
)

// Page is one rendered screen: MarkdownV2 text plus an inline keyboard.
// An empty keyboard means the message is sent without reply markup.
type Page struct {
	Text     string
	Keyboard tgbotapi.InlineKeyboardMarkup
}

// Links are the outbound URL targets wired into keyboard buttons.
type Links struct {
	WebApp    string
	GitHub    string
	Explorer  string
	Faucet    string
	Docs      string
	Community string
	RPC       string
}

// Renderer builds pages from the shared read-only catalog.
type Renderer struct {
	cat   *catalog.Catalog
	links Links
}

// NewRenderer creates a renderer over the catalog and link set.
func NewRenderer(cat *catalog.Catalog, links Links) *Renderer {
	return &Renderer{cat: cat, links: links}
}

// Callback payload tokens. The dispatcher parses these back into actions;
// keep them in one place so view and dispatch cannot drift apart.
const (
	CallbackMarketsAll   = "markets_all"
	CallbackStats        = "stats"
	CallbackHow          = "how"
	CallbackAchievements = "achievements"
	CallbackQuests       = "quests"
	CallbackAIAnalysis   = "ai_analysis"

	CallbackMarketsPrefix = "markets_"
	CallbackMarketPrefix  = "market_"
	CallbackAIPrefix      = "ai_"
)

const marketButtonLimit = 6

func dataButton(label, data string) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(label, data)
}

func urlButton(label, url string) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonURL(label, url)
}

// marketRows builds detail-view buttons for the first marketButtonLimit
// markets, chunked into rows of 2.
func marketRows(ms []catalog.Market) [][]tgbotapi.InlineKeyboardButton {
	var buttons []tgbotapi.InlineKeyboardButton
	for _, m := range ms {
		if len(buttons) == marketButtonLimit {
			break
		}
		label := m.ID
		if len(label) > 12 {
			label = label[:12]
		}
		buttons = append(buttons, dataButton(
			fmt.Sprintf("%s %s", m.Emoji, label),
			CallbackMarketPrefix+m.ID,
		))
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(buttons); i += 2 {
		end := i + 2
		if end > len(buttons) {
			end = len(buttons)
		}
		rows = append(rows, buttons[i:end])
	}
	return rows
}

// categoryRows builds the filter rows for the all-markets screen: the
// category set split into a first row of 3 and a remainder row.
func categoryRows() [][]tgbotapi.InlineKeyboardButton {
	var buttons []tgbotapi.InlineKeyboardButton
	for _, cat := range catalog.Categories() {
		buttons = append(buttons, dataButton(
			fmt.Sprintf("%s %s", cat.Emoji(), cat),
			CallbackMarketsPrefix+string(cat),
		))
	}
	if len(buttons) <= 3 {
		return [][]tgbotapi.InlineKeyboardButton{buttons}
	}
	return [][]tgbotapi.InlineKeyboardButton{buttons[:3], buttons[3:]}
}
