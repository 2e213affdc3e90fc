package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dormlife/notice-service/internal/config"
	"github.com/dormlife/notice-service/internal/handler"
	"github.com/dormlife/notice-service/internal/repository"
	"github.com/dormlife/notice-service/internal/repository/postgres"
	"github.com/dormlife/notice-service/internal/repository/sample"
	"github.com/dormlife/notice-service/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	config.LoadEnv()
	config.Init()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("failed to create zap logger: %s", err.Error())
	}
	defer logger.Sync()

	repo := newNoticeStore(ctx, logger)

	var rdb *redis.Client
	if addr := viper.GetString("redis.addr"); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr})
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Panicf("failed to ping redis: %s", err.Error())
		}
		log.Println("Successfully connected to Redis")
	} else {
		logger.Warn("REDIS_ADDR not set, running without list cache")
	}

	services := service.New(logger, repo, rdb)
	handlers := handler.New(logger, services, []byte(viper.GetString("jwt.secret")))

	services.StartJobs()
	defer services.StopJobs()

	server := &http.Server{
		Addr:         viper.GetString("app.port"),
		Handler:      handlers.SetupRoutes(),
		ReadTimeout:  viper.GetDuration("app.read_timeout"),
		WriteTimeout: viper.GetDuration("app.write_timeout"),
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %s", err.Error())
		}
	}()

	log.Println("Notice service started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Println("Notice service shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, viper.GetDuration("app.shutdown_timeout"))
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("graceful shutdown failed: %s", err.Error())
	}
}

// newNoticeStore picks the adapter implementation once, at construction:
// postgres when configured and reachable, otherwise the read-only fixture
// dataset so the board stays browsable in degraded mode.
func newNoticeStore(ctx context.Context, logger *zap.Logger) repository.Notices {
	if viper.GetString("store.mode") == "sample" {
		logger.Warn("STORE_MODE=sample, serving the fixture dataset; writes are disabled")
		return sample.New()
	}

	cfg := config.Postgres()
	if cfg.Host == "" {
		logger.Warn("postgres not configured, falling back to the fixture dataset; writes are disabled")
		return sample.New()
	}

	db, err := postgres.Connect(ctx, cfg)
	if err == nil {
		err = db.Ping(ctx)
	}
	if err != nil {
		logger.Sugar().Warnf("postgres unreachable (%s), falling back to the fixture dataset; writes are disabled", err.Error())
		return sample.New()
	}

	if err := postgres.InitSchema(ctx, db); err != nil {
		log.Panicf("failed to init notices schema: %s", err.Error())
	}

	log.Println("Successfully connected to PostgreSQL")
	return postgres.New(db)
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	return cfg.Build()
}
