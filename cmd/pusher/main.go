package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"news_pusher/internal/catalog"
	"news_pusher/internal/config"
	"news_pusher/internal/notifier"
	"news_pusher/internal/scheduler"
	"news_pusher/internal/service"
	"news_pusher/internal/source/newsapi"
	"news_pusher/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	resetSource := flag.String("reset-source", "", "delete all push records for this source id and exit")
	resetType := flag.String("reset-type", "news", "news type used with -reset-source")
	listPending := flag.String("list-pending", "", "print push records of this news type and exit")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	cat, err := catalog.Load(cfg.Publish.SourcesFile)
	if err != nil {
		logger.Error("failed to load source catalog", "error", err)
		os.Exit(1)
	}
	logger.Info("loaded source catalog", "sources", cat.Len())

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	newsStore := postgres.NewNewsStore(db)
	pushStore := postgres.NewPushStore(db)
	txManager := postgres.NewTransactionManager(db)

	var push service.Notifier
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := notifier.NewRabbitMQ(notifier.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		push = rabbitMQ
	}

	apiClient := newsapi.New(newsapi.Config{
		BaseURL:        cfg.API.BaseURL,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)

	publisher := service.NewPublisher(
		cat.Sources(),
		apiClient,
		newsStore,
		pushStore,
		txManager,
		push,
		logger,
		cfg.Publish,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *resetSource != "" {
		if _, err := publisher.ResetPush(ctx, *resetSource, *resetType); err != nil {
			logger.Error("push reset failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if *listPending != "" {
		recs, err := pushStore.ByType(ctx, *listPending)
		if err != nil {
			logger.Error("failed to list push records", "error", err)
			os.Exit(1)
		}
		enc := json.NewEncoder(os.Stdout)
		for _, rec := range recs {
			if err := enc.Encode(rec); err != nil {
				logger.Error("failed to encode push record", "error", err)
				os.Exit(1)
			}
		}
		return
	}

	if cfg.Publish.Interval > 0 {
		sched := scheduler.NewScheduler(publisher, cfg.Publish.Interval, cfg.Publish.RunTimeout, logger)
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler error", "error", err)
			os.Exit(1)
		}
		return
	}

	// Default mode: one pass and exit, an external trigger owns the cadence.
	if _, err := publisher.Run(ctx); err != nil {
		logger.Error("publish run failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
