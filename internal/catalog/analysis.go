package catalog

// Signal is the direction of a Bob AI trading signal.
type Signal string

const (
	SignalBullish Signal = "BULLISH"
	SignalBearish Signal = "BEARISH"
	SignalNeutral Signal = "NEUTRAL"
)

// Badge returns the glyph-tagged signal label used in rendered messages.
func (s Signal) Badge() string {
	switch s {
	case SignalBullish:
		return "🟢 BULLISH"
	case SignalBearish:
		return "🔴 BEARISH"
	default:
		return "🟡 NEUTRAL"
	}
}

// Analysis is a canned Bob AI commentary block for one market.
type Analysis struct {
	Signal         Signal
	Confidence     int // 0..100
	RiskNote       string
	Reasoning      []string
	Recommendation string
}

// analyses is sparse; markets without an entry fall back to defaultAnalysis.
var analyses = map[string]Analysis{
	"btc-100k-2026": {
		Signal:     SignalBullish,
		Confidence: 78,
		RiskNote:   "Macro liquidity shocks could stall the rally",
		Reasoning: []string{
			"Post-halving supply shock historically bullish",
			"Institutional ETF inflows accelerating",
			"On-chain accumulation at all-time highs",
		},
		Recommendation: "Strong YES at current 72% price",
	},
	"opnet-adoption": {
		Signal:     SignalBullish,
		Confidence: 72,
		RiskNote:   "Ecosystem is young, single-app volume concentration",
		Reasoning: []string{
			"OP_NET ecosystem growing rapidly",
			"MotoSwap and DeFi apps driving volume",
			"Developer activity increasing steadily",
		},
		Recommendation: "YES position favored at 65%",
	},
	"ai-agi-2027": {
		Signal:     SignalBearish,
		Confidence: 85,
		RiskNote:   "A surprise capability jump would invalidate the thesis",
		Reasoning: []string{
			"AGI definition remains contested",
			"Current models lack true reasoning",
			"Timeline extremely ambitious for 2028",
		},
		Recommendation: "Strong NO — 82% price fairly valued",
	},
}

var defaultAnalysis = Analysis{
	Signal:     SignalNeutral,
	Confidence: 50,
	RiskNote:   "Low conviction either way, size positions accordingly",
	Reasoning: []string{
		"Insufficient data for strong signal",
		"Market is fairly priced by AMM",
		"Monitor volume trends for direction",
	},
	Recommendation: "Hold — wait for clearer signal",
}

// AnalysisFor returns the Bob AI block for a market id, falling back to the
// neutral default when no dedicated analysis exists.
func (c *Catalog) AnalysisFor(id string) Analysis {
	if a, ok := c.analyses[id]; ok {
		return a
	}
	return defaultAnalysis
}
