package main

//go:generate swag init -d ../ -g cmd/main.go -o ../docs --parseInternal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safety_alert_system/internal/alert"
	"github.com/shenikar/safety_alert_system/internal/config"
	v1 "github.com/shenikar/safety_alert_system/internal/handler/http/v1"
	"github.com/shenikar/safety_alert_system/internal/history"
	"github.com/shenikar/safety_alert_system/internal/metrics"
	"github.com/shenikar/safety_alert_system/internal/notify"
	"github.com/shenikar/safety_alert_system/internal/predictor"
	"github.com/shenikar/safety_alert_system/internal/repository"
	"github.com/shenikar/safety_alert_system/internal/repository/memory"
	"github.com/shenikar/safety_alert_system/internal/risk"
	"github.com/shenikar/safety_alert_system/internal/service"
	"github.com/shenikar/safety_alert_system/internal/tracing"
	"github.com/shenikar/safety_alert_system/internal/zoneindex"
	"github.com/shenikar/safety_alert_system/pkg/logger"
	"github.com/shenikar/safety_alert_system/pkg/postgres"
	redisclient "github.com/shenikar/safety_alert_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/safety_alert_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// storage - набор хранилищ выбранного драйвера
type storage struct {
	locations history.Store
	alerts    alert.Store
	contacts  service.ContactRepository
	actions   service.ActionRecorder
	zones     zoneindex.Loader
}

// postgresStorage применяет миграции и собирает репозитории поверх пула соединений
func postgresStorage(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*storage, *pgxpool.Pool, error) {
	if err := postgres.Migrate(cfg.DatabaseURL, "migrations", log); err != nil {
		return nil, nil, err
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Successfully connected to PostgreSQL")

	return &storage{
		locations: repository.NewLocationRepository(dbpool),
		alerts:    repository.NewAlertRepository(dbpool),
		contacts:  repository.NewContactRepository(dbpool),
		actions:   repository.NewActionRepository(dbpool),
		zones:     repository.NewZoneRepository(dbpool),
	}, dbpool, nil
}

func memoryStorage() *storage {
	return &storage{
		locations: memory.NewLocationStore(),
		alerts:    memory.NewAlertStore(),
		contacts:  memory.NewContactStore(),
		actions:   memory.NewActionStore(),
		zones:     memory.NewZoneStore(memory.DefaultZones()...),
	}
}

func newPredictor(ctx context.Context, cfg *config.Config, log *logrus.Logger) predictor.Predictor {
	if cfg.PredictorURL == "" {
		log.Info("Threat predictor disabled (PREDICTOR_URL not set)")
		return predictor.Disabled{}
	}
	p := predictor.NewHTTPPredictor(cfg.PredictorURL, cfg.PredictorTimeout, log)
	if err := p.Load(ctx); err != nil {
		log.WithError(err).Warn("Threat predictor not ready, will retry on first prediction")
	}
	return p
}

// @title Safety Alert Engine API
// @version 1.0
// @description Risk evaluation and alert lifecycle engine for personal safety monitoring.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := tracing.Init(ctx, cfg.OTLPEndpoint, log)
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	// Хранилища
	var (
		store       *storage
		redisClient *redis.Client
	)
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		log.Warn("Using in-memory storage, data will be lost on restart")
		store = memoryStorage()
	default:
		var dbpool *pgxpool.Pool
		store, dbpool, err = postgresStorage(ctx, cfg, log)
		if err != nil {
			log.Fatalf("Failed to initialize PostgreSQL storage: %v", err)
		}
		defer dbpool.Close()

		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
	}

	var locations history.Store = store.locations
	if redisClient != nil {
		locations = history.NewCachedStore(store.locations, redisClient, log)
	}

	// Индекс зон риска
	zones := zoneindex.New(nil)
	refresher := zoneindex.NewRefresher(zones, store.zones, cfg.ZoneRefreshInterval, log)
	if err := refresher.Load(ctx); err != nil {
		log.Fatalf("Failed to load risk zones: %v", err)
	}
	refresher.Start(ctx)

	threatModel := newPredictor(ctx, cfg, log)

	// Оповещение контактов
	gateway := notify.NewHTTPGateway(cfg.NotifyGatewayURL, cfg.NotifyGatewaySecret, cfg.NotifyTimeout, log)
	var retryQueue notify.RetryPublisher
	if redisClient != nil {
		retryQueue = notify.NewRedisRetryQueue(redisClient)
		notify.NewRetryWorker(redisClient, gateway, cfg.NotifyMaxRetries, cfg.NotifyBaseDelay, log).Start(ctx)
	}
	fanout := notify.NewFanout(gateway, retryQueue, cfg.FanoutTimeout, cfg.DashboardURL, cfg.Location(), log)

	// Жизненный цикл тревог и оценка риска
	lifecycle := alert.NewLifecycle(store.alerts, alert.Config{
		DedupWindow:     cfg.AlertDedupWindow,
		ResponseTimeout: cfg.ResponseTimeout,
		SweepBatchSize:  cfg.SweepBatchSize,
	}, log)
	aggregator := risk.NewAggregator(zones, locations, lifecycle, threatModel, cfg.Location(), log)

	safetyService := service.NewSafetyService(locations, aggregator, lifecycle, store.contacts, store.actions, zones, fanout, log)

	alert.NewSweeper(safetyService.RunExpirySweep, cfg.SweepInterval, log).Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(safetyService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(metrics.Middleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", metrics.Handler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем фоновые воркеры до закрытия хранилищ
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.WithError(err).Warn("Failed to flush traces")
	}

	log.Info("Server gracefully stopped")
}
