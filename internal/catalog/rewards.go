package catalog

// Achievements and quests are static reference content: the bot renders the
// full tables, progress tracking lives in the web app.

// AchievementCategory groups achievements for display.
type AchievementCategory string

const (
	AchievementTrading   AchievementCategory = "trading"
	AchievementMilestone AchievementCategory = "milestone"
	AchievementExplorer  AchievementCategory = "explorer"
	AchievementSocial    AchievementCategory = "social"
)

// achievementOrder is the declared group priority, not alphabetical.
var achievementOrder = []AchievementCategory{
	AchievementTrading,
	AchievementMilestone,
	AchievementExplorer,
	AchievementSocial,
}

// Label returns the display heading for the group.
func (c AchievementCategory) Label() string {
	switch c {
	case AchievementTrading:
		return "📊 Trading"
	case AchievementMilestone:
		return "🏁 Milestones"
	case AchievementExplorer:
		return "🧭 Explorer"
	default:
		return "🤝 Social"
	}
}

// Achievement is a static reference entry; no per-user progress here.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Category    AchievementCategory
	XP          int
}

var achievements = []Achievement{
	{ID: "first-position", Title: "First Position", Description: "Buy your first YES or NO shares", Icon: "🎯", Category: AchievementTrading, XP: 50},
	{ID: "market-maker", Title: "Market Maker", Description: "Provide liquidity to any market", Icon: "💧", Category: AchievementTrading, XP: 150},
	{ID: "diamond-hands", Title: "Diamond Hands", Description: "Hold a position until resolution", Icon: "💎", Category: AchievementTrading, XP: 200},
	{ID: "oracle", Title: "Oracle", Description: "Win 5 resolved markets", Icon: "🔮", Category: AchievementTrading, XP: 300},
	{ID: "satoshi-starter", Title: "Satoshi Starter", Description: "Stake 10K sats in a single market", Icon: "🪙", Category: AchievementMilestone, XP: 100},
	{ID: "centurion", Title: "Centurion", Description: "Place 100 trades", Icon: "🏛️", Category: AchievementMilestone, XP: 400},
	{ID: "whale-watcher", Title: "Whale Watcher", Description: "Reach 1M sats lifetime volume", Icon: "🐋", Category: AchievementMilestone, XP: 500},
	{ID: "category-hopper", Title: "Category Hopper", Description: "Trade in all 5 categories", Icon: "🧭", Category: AchievementExplorer, XP: 150},
	{ID: "early-bird", Title: "Early Bird", Description: "Join a market within its first 24 hours", Icon: "🐦", Category: AchievementExplorer, XP: 100},
	{ID: "chain-reader", Title: "Chain Reader", Description: "Check live OP_NET network stats", Icon: "⛓️", Category: AchievementExplorer, XP: 50},
	{ID: "signal-booster", Title: "Signal Booster", Description: "Share a market with a friend", Icon: "📣", Category: AchievementSocial, XP: 75},
	{ID: "community-voice", Title: "Community Voice", Description: "Join the OP_NET community chat", Icon: "🗣️", Category: AchievementSocial, XP: 50},
}

// AchievementGroup is one display section of the achievements screen.
type AchievementGroup struct {
	Category     AchievementCategory
	Achievements []Achievement
}

// AchievementGroups returns achievements grouped by category, groups in
// declared priority order and entries in definition order.
func (c *Catalog) AchievementGroups() []AchievementGroup {
	groups := make([]AchievementGroup, 0, len(achievementOrder))
	for _, cat := range achievementOrder {
		g := AchievementGroup{Category: cat}
		for _, a := range c.achievements {
			if a.Category == cat {
				g.Achievements = append(g.Achievements, a)
			}
		}
		if len(g.Achievements) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// Cadence is how often a quest can be completed.
type Cadence string

const (
	CadenceOnetime Cadence = "onetime"
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
)

var cadenceOrder = []Cadence{CadenceOnetime, CadenceDaily, CadenceWeekly}

// Label returns the display heading for the cadence group.
func (c Cadence) Label() string {
	switch c {
	case CadenceOnetime:
		return "⚡ One-Time"
	case CadenceDaily:
		return "📅 Daily"
	default:
		return "🗓 Weekly"
	}
}

// Quest is a static reference entry, like Achievement.
type Quest struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Cadence     Cadence
	XP          int
}

var quests = []Quest{
	{ID: "connect-wallet", Title: "Connect OP_WALLET", Description: "Link your OP_WALLET browser extension", Icon: "🔗", Cadence: CadenceOnetime, XP: 100},
	{ID: "first-prediction", Title: "First Prediction", Description: "Take a side in any market", Icon: "🎯", Cadence: CadenceOnetime, XP: 150},
	{ID: "daily-checkin", Title: "Daily Check-In", Description: "Open BitPredict once today", Icon: "📅", Cadence: CadenceDaily, XP: 20},
	{ID: "market-scout", Title: "Market Scout", Description: "Browse 3 different markets", Icon: "🔍", Cadence: CadenceDaily, XP: 30},
	{ID: "ask-bob", Title: "Ask Bob", Description: "View a Bob AI analysis", Icon: "🤖", Cadence: CadenceDaily, XP: 25},
	{ID: "volume-runner", Title: "Volume Runner", Description: "Trade 50K sats this week", Icon: "🏃", Cadence: CadenceWeekly, XP: 200},
	{ID: "streak-keeper", Title: "Streak Keeper", Description: "Check in 5 days in a row", Icon: "🔥", Cadence: CadenceWeekly, XP: 250},
	{ID: "category-explorer", Title: "Category Explorer", Description: "Trade in 3 categories this week", Icon: "🧭", Cadence: CadenceWeekly, XP: 180},
}

// QuestGroup is one display section of the quest board.
type QuestGroup struct {
	Cadence Cadence
	Quests  []Quest
}

// QuestGroups returns quests grouped by cadence, groups in declared order.
func (c *Catalog) QuestGroups() []QuestGroup {
	groups := make([]QuestGroup, 0, len(cadenceOrder))
	for _, cad := range cadenceOrder {
		g := QuestGroup{Cadence: cad}
		for _, q := range c.quests {
			if q.Cadence == cad {
				g.Quests = append(g.Quests, q)
			}
		}
		if len(g.Quests) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}
