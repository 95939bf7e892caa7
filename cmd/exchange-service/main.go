package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/LavaJover/shvark-exchange-service/internal/app/background"
	"github.com/LavaJover/shvark-exchange-service/internal/config"
	"github.com/LavaJover/shvark-exchange-service/internal/delivery/httpapi"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/repository"
	exchangeredis "github.com/LavaJover/shvark-exchange-service/internal/infrastructure/redis"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/telegram"
	requestuc "github.com/LavaJover/shvark-exchange-service/internal/usecase/request"
	useruc "github.com/LavaJover/shvark-exchange-service/internal/usecase/user"
	goredis "github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.ExchangeDB.MigrationsPath != "" {
		if err := migrate.ApplyMigrations(db, cfg.ExchangeDB.MigrationsPath); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}
	}

	// Init redis for dialog drafts
	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	requestPublisher := kafka.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)

	// Init notification gateway
	notifier := telegram.NewTelegramNotifier(
		cfg.Telegram.BotToken,
		cfg.Telegram.OperatorChatID,
		cfg.Lifecycle.NotifyTimeout,
	)

	// Init repos
	requestRepo := repository.NewDefaultExchangeRequestRepository(db)
	userRepo := repository.NewDefaultUserRepository(db)
	draftRepo := exchangeredis.NewRedisDraftRepository(redisClient, cfg.Redis.DraftTTL)
	eventLog := logger.NewPGRequestEventLogger(db)

	// Init metrics
	requestMetrics := metrics.NewRequestMetrics()

	// Init usecases
	exchangeUsecase := requestuc.NewDefaultExchangeUsecase(
		requestRepo,
		notifier,
		requestPublisher,
		eventLog,
		requestMetrics,
		requestuc.LifecyclePolicy{
			OfferTTL:      cfg.Lifecycle.OfferTTL,
			WaitTTL:       cfg.Lifecycle.WaitTTL,
			NotifyTimeout: cfg.Lifecycle.NotifyTimeout,
			ExpireBooked:  cfg.Lifecycle.ExpireBooked,
		},
	)
	userUsecase := useruc.NewDefaultUserUsecase(userRepo, draftRepo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Expiration sweeper
	tasks := background.NewBackgroundTasks(exchangeUsecase, cfg.Lifecycle.SweepInterval)
	tasks.StartAll(ctx)

	// Metrics endpoint
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		addr := fmt.Sprintf("%s:%s", cfg.MetricsServer.Host, cfg.MetricsServer.Port)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("metrics server stopped: %v\n", err)
		}
	}()

	// HTTP API for the bot layer
	requestHandler := httpapi.NewRequestHandler(exchangeUsecase, userUsecase, notifier, cfg.Lifecycle.OfferTTL)
	userHandler := httpapi.NewUserHandler(userUsecase)
	router := httpapi.NewRouter(requestHandler, userHandler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("exchange service started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
