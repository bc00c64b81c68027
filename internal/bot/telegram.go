package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/opbitpredict/bitpredict-bot/internal/config"
	"github.com/opbitpredict/bitpredict-bot/internal/view"
)

// ═══════════════════════════════════════════════════════════════════════════════
// TELEGRAM TRANSPORT - Long-poll update loop over the dispatcher
// ═══════════════════════════════════════════════════════════════════════════════
//
// Features:
//   📊 Catalog browsing with inline-keyboard navigation
//   🤖 Bob AI market analysis screens
//   📡 Live OP_NET block height & balance queries
//   🏆 Achievement and quest reference boards
//
// ═══════════════════════════════════════════════════════════════════════════════

// handleTimeout bounds one dispatch end to end, including its RPC call.
const handleTimeout = 15 * time.Second

// Bot manages the Telegram interface
type Bot struct {
	mu         sync.Mutex
	api        *tgbotapi.BotAPI
	dispatcher *Dispatcher
	running    bool
	stopCh     chan struct{}
}

// New creates the Telegram bot from config and a wired dispatcher.
func New(cfg *config.Config, dispatcher *Dispatcher) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b := &Bot{
		api:        api,
		dispatcher: dispatcher,
		stopCh:     make(chan struct{}),
	}

	log.Info().Str("username", api.Self.UserName).Msg("🤖 Telegram bot initialized")

	return b, nil
}

// Start registers the command menu and begins listening for updates.
func (b *Bot) Start() {
	b.mu.Lock()
	if b.running {
		b.mu.Unlock()
		return
	}
	b.running = true
	b.mu.Unlock()

	b.registerCommands()

	go b.updateLoop()
	log.Info().Msg("📱 Telegram bot started")
}

// Stop stops the bot
func (b *Bot) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.running {
		return
	}

	b.running = false
	close(b.stopCh)
	b.api.StopReceivingUpdates()
	log.Info().Msg("Telegram bot stopped")
}

// registerCommands publishes the command menu shown in the Telegram client.
func (b *Bot) registerCommands() {
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Welcome & main menu"},
		{Command: "markets", Description: "Browse all prediction markets"},
		{Command: "market", Description: "Detailed market view (e.g. /market btc-100k-2026)"},
		{Command: "crypto", Description: "Crypto markets"},
		{Command: "politics", Description: "Politics markets"},
		{Command: "sports", Description: "Sports markets"},
		{Command: "tech", Description: "Tech markets"},
		{Command: "ai", Description: "Bob AI market analysis"},
		{Command: "balance", Description: "On-chain wallet balance"},
		{Command: "stats", Description: "OP_NET network stats"},
		{Command: "achievements", Description: "Achievement list"},
		{Command: "quests", Description: "Quest board"},
		{Command: "about", Description: "About BitPredict"},
		{Command: "help", Description: "All commands"},
	}

	if _, err := b.api.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		log.Warn().Err(err).Msg("⚠️ Failed to register command menu")
	}
}

func (b *Bot) updateLoop() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-b.stopCh:
			return
		case update := <-updates:
			switch {
			case update.CallbackQuery != nil:
				b.handleCallback(update.CallbackQuery)
			case update.Message != nil && update.Message.IsCommand():
				b.handleCommand(update.Message)
			}
		}
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	page, ok := b.dispatcher.PageForCommand(ctx, msg.Command(), msg.CommandArguments())
	if !ok {
		b.sendPlain(msg.Chat.ID, "❓ Unknown command. Use /help")
		return
	}

	log.Debug().Str("command", msg.Command()).Int64("chat", msg.Chat.ID).Msg("Command dispatched")
	b.send(msg.Chat.ID, page)
}

func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	// Always answer, even for payloads we drop, so the client stops spinning.
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		log.Warn().Err(err).Msg("⚠️ Failed to answer callback query")
	}

	if query.Message == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	page, ok := b.dispatcher.PageForCallback(ctx, query.Data)
	if !ok {
		// Unrecognized payload: silent no-op.
		return
	}

	log.Debug().Str("payload", query.Data).Int64("chat", query.Message.Chat.ID).Msg("Callback dispatched")
	b.send(query.Message.Chat.ID, page)
}

func (b *Bot) send(chatID int64, page view.Page) {
	msg := tgbotapi.NewMessage(chatID, page.Text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.DisableWebPagePreview = true
	if len(page.Keyboard.InlineKeyboard) > 0 {
		msg.ReplyMarkup = page.Keyboard
	}
	if _, err := b.api.Send(msg); err != nil {
		log.Error().Err(err).Msg("Failed to send Telegram message")
	}
}

func (b *Bot) sendPlain(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Error().Err(err).Msg("Failed to send Telegram message")
	}
}
