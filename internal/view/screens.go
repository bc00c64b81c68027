package view

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/opbitpredict/bitpredict-bot/internal/catalog"
	"github.com/opbitpredict/bitpredict-bot/internal/format"
)

// Welcome is the /start screen and the root of the navigation graph.
func (r *Renderer) Welcome() Page {
	text := fmt.Sprintf(`*🔮 BitPredict — AI Prediction Markets on Bitcoin L1*

Trade binary outcomes powered by *OP\_NET* smart contracts directly on Bitcoin Layer 1\.

• 📈 *%d active markets* across Crypto, Politics, Sports, Tech & Culture
• 🤖 *Bob AI* analysis with confidence scores
• ⚡ *Constant\-product AMM* \(x·y\=k\) pricing
• 🔒 *AssemblyScript smart contract* compiled to WASM
• 🏆 *Achievements* \+ quest XP system

Use the buttons below or type /help for commands\.`, r.cat.Len())

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			dataButton("📊 Markets", CallbackMarketsAll),
			dataButton("🤖 AI Analysis", CallbackAIAnalysis),
		),
		tgbotapi.NewInlineKeyboardRow(
			dataButton("📡 Network Stats", CallbackStats),
			dataButton("❓ How It Works", CallbackHow),
		),
		tgbotapi.NewInlineKeyboardRow(
			dataButton("🏆 Achievements", CallbackAchievements),
			dataButton("🎯 Quests", CallbackQuests),
		),
		tgbotapi.NewInlineKeyboardRow(
			urlButton("🌐 Open Web App", r.links.WebApp),
			urlButton("💻 GitHub", r.links.GitHub),
		),
	)

	return Page{Text: text, Keyboard: keyboard}
}

// Help lists the command surface.
func (r *Renderer) Help() Page {
	text := `*📖 BitPredict Commands*

/start — Welcome & main menu
/help — This message
/markets — Browse all prediction markets
/market \_id\_ — Detailed market view
/crypto — Crypto markets only
/politics — Politics markets only
/sports — Sports markets only
/tech — Tech markets only
/ai \_id\_ — Bob AI market analysis
/balance \_address\_ — On\-chain wallet balance
/stats — OP\_NET network stats
/achievements — Achievement list
/quests — Quest board
/about — About BitPredict`

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			dataButton("📊 Browse Markets", CallbackMarketsAll),
		),
	)

	return Page{Text: text, Keyboard: keyboard}
}

// MarketList renders the market overview, optionally filtered by category.
// An empty filter renders the full catalog plus the category filter rows.
func (r *Renderer) MarketList(filter catalog.Category) Page {
	ms := r.cat.Markets(filter)
	all := filter == ""

	var b strings.Builder
	if all {
		b.WriteString("📊 *All Markets*\n")
	} else {
		b.WriteString(fmt.Sprintf("%s *%s Markets*\n", filter.Emoji(), filter))
	}

	for i, m := range ms {
		b.WriteString(fmt.Sprintf("\n%d\\. %s *%s*\n   🟢 %s • 🔴 %s • Vol: %s sats\n",
			i+1,
			m.Emoji,
			format.Escape(m.Question),
			format.Percent(m.Yes),
			format.Percent(m.No),
			format.Escape(format.Amount(m.Volume)),
		))
	}
	if len(ms) == 0 {
		b.WriteString("\n_No markets in this category\\._")
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	if all {
		rows = append(rows, categoryRows()...)
	}
	rows = append(rows, marketRows(ms)...)
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		urlButton("🌐 Open App", r.links.WebApp),
	))
	if !all {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			dataButton("◀ All Markets", CallbackMarketsAll),
		))
	}

	return Page{Text: b.String(), Keyboard: tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}}
}

// MarketDetail renders the full card for one market.
func (r *Renderer) MarketDetail(m catalog.Market) Page {
	text := fmt.Sprintf(`%s *%s*

%s

🟢 *YES*: %s probability
🔴 *NO*: %s probability

📊 *Volume*: %s sats
💧 *Liquidity*: %s sats
📅 *Ends*: %s
🏷 *Category*: %s
🏷 *Tags*: %s

_AMM: Constant\-product \(x·y\=k\) with 2%% fee_
_Smart contract on OP\_NET Bitcoin L1_`,
		m.Emoji,
		format.Escape(m.Question),
		format.ProbabilityBar(m.Yes),
		format.Percent(m.Yes),
		format.Percent(m.No),
		format.Escape(format.Amount(m.Volume)),
		format.Escape(format.Amount(m.Liquidity)),
		format.Escape(m.EndDate),
		format.Escape(string(m.Category)),
		format.Escape(strings.Join(m.Tags, ", ")),
	)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			urlButton(fmt.Sprintf("🟢 Trade YES @ %s", format.Percent(m.Yes)), r.links.WebApp),
			urlButton(fmt.Sprintf("🔴 Trade NO @ %s", format.Percent(m.No)), r.links.WebApp),
		),
		tgbotapi.NewInlineKeyboardRow(
			dataButton("◀ All Markets", CallbackMarketsAll),
			dataButton("🤖 AI Analysis", CallbackAIPrefix+m.ID),
		),
	)

	return Page{Text: text, Keyboard: keyboard}
}

// Analysis renders the Bob AI commentary for one market.
func (r *Renderer) Analysis(m catalog.Market) Page {
	a := r.cat.AnalysisFor(m.ID)

	reasons := make([]string, 0, len(a.Reasoning))
	for _, reason := range a.Reasoning {
		reasons = append(reasons, "  • "+format.Escape(reason))
	}

	text := fmt.Sprintf(`*🤖 Bob AI Analysis*

%s *%s*

*Signal*: %s
*Confidence*: %d%%

*Reasoning:*
%s

*Risk:* _%s_
*Recommendation:* _%s_

🟢 YES: %s  •  🔴 NO: %s
_Powered by Bob AI \+ OP\_NET on\-chain data_`,
		m.Emoji,
		format.Escape(m.Question),
		a.Signal.Badge(),
		a.Confidence,
		strings.Join(reasons, "\n"),
		format.Escape(a.RiskNote),
		format.Escape(a.Recommendation),
		format.Percent(m.Yes),
		format.Percent(m.No),
	)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			urlButton("🟢 Trade YES", r.links.WebApp),
			urlButton("🔴 Trade NO", r.links.WebApp),
		),
		tgbotapi.NewInlineKeyboardRow(
			dataButton("◀ Back to Market", CallbackMarketPrefix+m.ID),
		),
	)

	return Page{Text: text, Keyboard: keyboard}
}

// Stats renders the network screen. ok=false degrades the block height to a
// connecting placeholder instead of failing the render.
func (r *Renderer) Stats(height uint64, ok bool) Page {
	status := "🟡 CONNECTING"
	heightStr := "_connecting\\.\\.\\._"
	if ok {
		status = "🟢 LIVE"
		heightStr = "*" + format.Comma(height) + "*"
	}

	text := fmt.Sprintf(`*📡 OP\_NET Network Stats*

%s

📦 *Block Height*: %s
📊 *Active Markets*: *%d*
💰 *Total Volume*: %s sats
💧 *Total Liquidity*: %s sats
🌐 *Network*: OP\_NET Regtest
⚡ *Consensus*: PoW \+ OP\_NET

_Data from %s_`,
		status,
		heightStr,
		r.cat.Len(),
		format.Escape(format.Amount(r.cat.TotalVolume())),
		format.Escape(format.Amount(r.cat.TotalLiquidity())),
		format.Escape(r.links.RPC),
	)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			urlButton("🔍 Explorer", r.links.Explorer),
			urlButton("📖 Docs", r.links.Docs),
		),
		tgbotapi.NewInlineKeyboardRow(
			urlButton("💧 Faucet", r.links.Faucet),
			urlButton("🌐 Web App", r.links.WebApp),
		),
		tgbotapi.NewInlineKeyboardRow(
			dataButton("📊 Browse Markets", CallbackMarketsAll),
		),
	)

	return Page{Text: text, Keyboard: keyboard}
}

// Balance renders an on-chain address balance, degrading gracefully when the
// node did not answer.
func (r *Renderer) Balance(address string, sats uint64, ok bool) Page {
	balanceStr := "🟡 _balance unavailable, node not reachable_"
	if ok {
		balanceStr = fmt.Sprintf("💵 *%s sats* \\(≈%s\\)", format.Comma(sats), format.Escape(format.AmountUnsigned(sats)))
	}

	text := fmt.Sprintf(`*💰 OP\_NET Wallet Balance*

*Address*: %s

%s

_Balances settle on Bitcoin L1 via OP\_NET\._`,
		format.Escape(address),
		balanceStr,
	)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			urlButton("🔍 Explorer", r.links.Explorer),
		),
		tgbotapi.NewInlineKeyboardRow(
			dataButton("📡 Network Stats", CallbackStats),
		),
	)

	return Page{Text: text, Keyboard: keyboard}
}

// Achievements renders the full achievement table grouped by category.
func (r *Renderer) Achievements() Page {
	var b strings.Builder
	b.WriteString("*🏆 BitPredict Achievements*\n")

	for _, g := range r.cat.AchievementGroups() {
		b.WriteString("\n*" + format.Escape(g.Category.Label()) + "*\n")
		for _, a := range g.Achievements {
			b.WriteString(fmt.Sprintf("%s *%s* — %s \\(\\+%d XP\\)\n",
				a.Icon, format.Escape(a.Title), format.Escape(a.Description), a.XP))
		}
	}

	b.WriteString("\n_Progress is tracked in the web app\\._")

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			dataButton("🎯 Quests", CallbackQuests),
			dataButton("📊 Markets", CallbackMarketsAll),
		),
	)

	return Page{Text: b.String(), Keyboard: keyboard}
}

// Quests renders the quest board grouped by cadence.
func (r *Renderer) Quests() Page {
	var b strings.Builder
	b.WriteString("*🎯 BitPredict Quests*\n")

	for _, g := range r.cat.QuestGroups() {
		b.WriteString("\n*" + format.Escape(g.Cadence.Label()) + "*\n")
		for _, q := range g.Quests {
			b.WriteString(fmt.Sprintf("%s *%s* — %s \\(\\+%d XP\\)\n",
				q.Icon, format.Escape(q.Title), format.Escape(q.Description), q.XP))
		}
	}

	b.WriteString("\n_Complete quests to earn XP and unlock achievements\\._")

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			dataButton("🏆 Achievements", CallbackAchievements),
			dataButton("📊 Markets", CallbackMarketsAll),
		),
	)

	return Page{Text: b.String(), Keyboard: keyboard}
}

// HowItWorks renders the four-step explainer.
func (r *Renderer) HowItWorks() Page {
	text := `*❓ How BitPredict Works*

*1\. 🪙 Choose a Market*
Browse prediction markets across Crypto, Politics, Sports, Tech & Culture\. Each market has YES/NO outcomes priced by our AMM\.

*2\. 🔄 Buy Shares*
Use regtest BTC to buy YES or NO shares\. Constant\-product AMM \(x·y\=k\) ensures fair pricing with slippage protection\.

*3\. 🤖 AI Analysis*
Bob AI agent analyzes on\-chain data, volume patterns, and reserve ratios to generate trading signals\.

*4\. 🏆 Collect Payout*
When the market resolves, winning shares are redeemable 1:1\. Payouts settle directly on Bitcoin L1 via OP\_NET\.`

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			dataButton("📊 Browse Markets", CallbackMarketsAll),
			urlButton("🌐 Open App", r.links.WebApp),
		),
	)

	return Page{Text: text, Keyboard: keyboard}
}

// About renders project background and links.
func (r *Renderer) About() Page {
	text := fmt.Sprintf(`*🔮 About BitPredict*

BitPredict is a decentralized prediction market platform built on *OP\_NET* \- Bitcoin Layer 1 smart contracts\.

*Tech Stack:*
• 🟠 *Bitcoin L1* \- Settlement layer
• ⚡ *OP\_NET* \- Smart contract runtime \(WASM\)
• 📝 *AssemblyScript* \- Contract language
• ⚙️ *React \+ Vite \+ TypeScript* \- Frontend
• 🎨 *Tailwind CSS* \- Styling
• 🤖 *Bob AI* \- Market analysis agent

*Features:*
• Binary outcome prediction markets
• Constant\-product AMM \(x·y\=k\)
• AI\-powered market analysis
• Real\-time OP\_NET block height
• Achievements \+ quest XP system
• OP\_WALLET browser extension support

*Links:*
• [Web App](%s)
• [GitHub](%s)
• [Explorer](%s)
• [OP\_NET Docs](%s)
• [Community](%s)`,
		format.Escape(r.links.WebApp),
		format.Escape(r.links.GitHub),
		format.Escape(r.links.Explorer),
		format.Escape(r.links.Docs),
		format.Escape(r.links.Community),
	)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			urlButton("🌐 Open App", r.links.WebApp),
			urlButton("💻 GitHub", r.links.GitHub),
		),
		tgbotapi.NewInlineKeyboardRow(
			dataButton("📊 Browse Markets", CallbackMarketsAll),
		),
	)

	return Page{Text: text, Keyboard: keyboard}
}

// MarketNotFound renders the unknown-id response.
func (r *Renderer) MarketNotFound(id string) Page {
	text := fmt.Sprintf("Market *%s* not found\\.", format.Escape(id))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			dataButton("◀ All Markets", CallbackMarketsAll),
		),
	)

	return Page{Text: text, Keyboard: keyboard}
}

// MarketUsage renders the missing-argument hint for /market.
func (r *Renderer) MarketUsage() Page {
	return Page{Text: "Usage: `/market <id>`\nExample: `/market btc-100k-2026`"}
}

// BalanceUsage renders the missing-argument hint for /balance.
func (r *Renderer) BalanceUsage() Page {
	return Page{Text: "Usage: `/balance <address>`\nExample: `/balance bcrt1q7c0subaczuqzm2q27ck8v8u5lr4dqvvn`"}
}
