// Package format turns catalog values into MarkdownV2-safe display strings.
//
// Rounding policy is round-half-up everywhere (decimal.Round, half away from
// zero; all inputs here are non-negative). Amount is display-lossy: exact
// values are not reconstructable from its output.
package format

import (
	"math"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Reserved is the MarkdownV2 reserved-character set. Every catalog-derived
// free string must pass through Escape before being embedded in a message.
const Reserved = "_*[]()~`>#+-=|{}.!"

const (
	barSegments = 10
	barYes      = "🟢"
	barNo       = "🔴"
)

var (
	hundred  = decimal.NewFromInt(100)
	ten      = decimal.NewFromInt(barSegments)
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)

	printer = message.NewPrinter(language.English)
)

// Percent renders a probability as an integer percentage, e.g. "72%".
func Percent(p decimal.Decimal) string {
	return p.Mul(hundred).Round(0).String() + "%"
}

// Amount renders a sats quantity compactly: 999 → "999", 245000 → "245K",
// 1200000 → "1.2M". The '.' in the M form is a MarkdownV2 reserved
// character; Escape the result before embedding it in a message.
func Amount(n int64) string {
	d := decimal.NewFromInt(n)
	switch {
	case n >= 1_000_000:
		return d.Div(million).StringFixed(1) + "M"
	case n >= 1_000:
		return d.Div(thousand).Round(0).String() + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}

// AmountUnsigned is Amount for uint64 chain values, clamping anything past
// the int64 range instead of letting the conversion wrap negative.
func AmountUnsigned(n uint64) string {
	if n > math.MaxInt64 {
		n = math.MaxInt64
	}
	return Amount(int64(n))
}

// Comma renders an exact integer with thousands separators, e.g. "1,234,567".
func Comma(n uint64) string {
	return printer.Sprintf("%d", n)
}

// ProbabilityBar renders a fixed-width 10-segment YES/NO bar. The filled
// count is round-half-up(yes × 10), clamped to [0, 10].
func ProbabilityBar(yes decimal.Decimal) string {
	filled := yes.Mul(ten).Round(0).IntPart()
	if filled < 0 {
		filled = 0
	}
	if filled > barSegments {
		filled = barSegments
	}
	return strings.Repeat(barYes, int(filled)) + strings.Repeat(barNo, barSegments-int(filled))
}

// Escape backslash-prefixes every MarkdownV2 reserved character.
func Escape(text string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, text)
}
