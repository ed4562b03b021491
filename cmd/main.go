package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ArtemYurchenko333/NatalBot/internal/config"
	"github.com/ArtemYurchenko333/NatalBot/internal/integrations/gemini"
	"github.com/ArtemYurchenko333/NatalBot/internal/repository"
	"github.com/ArtemYurchenko333/NatalBot/internal/session"
	"github.com/ArtemYurchenko333/NatalBot/internal/telegram"
	"github.com/ArtemYurchenko333/NatalBot/internal/usecase"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ---- Configuration (read only here) ----
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ---- Storage ----
	store, err := repository.Open(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open readings database", "err", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	// ---- Generation backend ----
	gen, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Error("failed to create gemini client", "err", err)
		os.Exit(1)
	}

	// ---- Transport ----
	bot, err := telegram.New(cfg.TelegramBotToken, logger)
	if err != nil {
		logger.Error("failed to create telegram bot", "err", err)
		os.Exit(1)
	}

	// ---- Engine ----
	engine, err := usecase.NewEngine(gen, store, session.NewStore(), bot, logger)
	if err != nil {
		logger.Error("failed to create conversation engine", "err", err)
		os.Exit(1)
	}

	logger.Info("bot started, waiting for updates", "model", cfg.GeminiModel)
	if err := bot.Run(ctx, engine); err != nil {
		logger.Error("update loop stopped", "err", err)
		os.Exit(1)
	}
}
