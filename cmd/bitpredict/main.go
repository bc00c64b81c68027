// BitPredict Bot - conversational front-end for AI prediction markets on
// Bitcoin L1 via OP_NET.
//
// The bot serves a fixed market catalog with Bob AI commentary and AMM-style
// pricing, plus live OP_NET chain queries (block height, address balance).
// All user-facing state is static reference content; nothing is persisted.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/opbitpredict/bitpredict-bot/internal/bot"
	"github.com/opbitpredict/bitpredict-bot/internal/catalog"
	"github.com/opbitpredict/bitpredict-bot/internal/config"
	"github.com/opbitpredict/bitpredict-bot/internal/opnet"
	"github.com/opbitpredict/bitpredict-bot/internal/view"
)

const version = "1.2.0"

func main() {
	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// Load environment
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	log.Info().
		Str("version", version).
		Str("rpc", cfg.RPCURL).
		Msg("🔮 BitPredict bot starting...")

	// ====== CORE COMPONENTS ======

	cat := catalog.New()

	chain, err := opnet.NewClient(cfg.RPCURL, cfg.RPCTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize OP_NET RPC client")
	}
	defer chain.Close()

	views := view.NewRenderer(cat, view.Links{
		WebApp:    cfg.WebAppURL,
		GitHub:    cfg.GitHubURL,
		Explorer:  cfg.ExplorerURL,
		Faucet:    cfg.FaucetURL,
		Docs:      cfg.DocsURL,
		Community: cfg.CommunityURL,
		RPC:       cfg.RPCURL,
	})

	dispatcher := bot.NewDispatcher(cat, views, chain)

	telegramBot, err := bot.New(cfg, dispatcher)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Telegram bot")
	}

	telegramBot.Start()

	// ====== STARTUP COMPLETE ======
	log.Info().Int("markets", cat.Len()).Msg("✅ All systems online")
	log.Info().Msg("💡 Use /help for commands")

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("🛑 Received shutdown signal")

	telegramBot.Stop()

	log.Info().Msg("👋 Goodbye!")
}
