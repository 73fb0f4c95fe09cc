package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/advisor"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/auth"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/config"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/handlers"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/hybrid"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/localstore"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/mastermind"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/notify"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/remotestore"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/schedule"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	jsonLogs := flag.Bool("json-logs", false, "emit structured JSON logs")
	flag.Parse()

	var handler slog.Handler
	if *jsonLogs {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	} else {
		handler = slog.NewTextHandler(os.Stderr, nil)
	}
	log := slog.New(handler)
	slog.SetDefault(log)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	kv, err := localstore.NewFileKV(cfg.DataDir)
	if err != nil {
		return err
	}
	local := localstore.New(kv, log)

	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()
		log.Info("remote storage enabled")
	} else {
		log.Info("remote storage disabled, running on local files only")
	}
	remote := remotestore.New(pool, log)
	store := hybrid.New(local, remote, log)

	adv := advisor.New(advisor.Config{
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
		OpenAIBaseURL: cfg.OpenAIBaseURL,
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIModel:   cfg.OpenAIModel,
	}, log)

	var notifier notify.Notifier
	if cfg.TelegramBotToken != "" {
		notifier, err = notify.NewTelegram(cfg.TelegramBotToken, log)
		if err != nil {
			return err
		}
	}

	scheduler := schedule.New(store, notifier, log)
	groups := mastermind.NewService(local, local, log)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(auth.JWTMiddleware(cfg.JWTSecret, func(c echo.Context) bool {
		return c.Path() == "/healthz"
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	handlers.NewProfileHandler(store).Register(e)
	handlers.NewContactsHandler(store, local).Register(e)
	handlers.NewSuggestionsHandler(store, adv).Register(e)
	handlers.NewInsightsHandler(store, adv).Register(e)
	handlers.NewMastermindHandler(store, groups).Register(e)
	handlers.NewScheduleHandler(store, scheduler).Register(e)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", slog.String("addr", cfg.Addr))
		errCh <- e.Start(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
