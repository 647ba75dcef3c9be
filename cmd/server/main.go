package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/y-inoue-koma/club-activity-manager/config"
	"github.com/y-inoue-koma/club-activity-manager/internal/api/handler"
	"github.com/y-inoue-koma/club-activity-manager/internal/api/router"
	"github.com/y-inoue-koma/club-activity-manager/internal/notify"
	"github.com/y-inoue-koma/club-activity-manager/internal/repository"
	"github.com/y-inoue-koma/club-activity-manager/internal/service"
	"github.com/y-inoue-koma/club-activity-manager/pkg/database"
	"github.com/y-inoue-koma/club-activity-manager/pkg/jwt"
	"github.com/y-inoue-koma/club-activity-manager/pkg/logger"
	"github.com/y-inoue-koma/club-activity-manager/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, log)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, log); err != nil {
		return err
	}

	// Redis is optional: without it the token blacklist and trend cache
	// are simply off.
	var rc *redis.Client
	if cfg.Redis.Addr != "" {
		rc, err = redis.NewClient(&cfg.Redis, log)
		if err != nil {
			log.Warn("redis unavailable, running degraded", zap.Error(err))
			rc = nil
		} else {
			defer rc.Close()
		}
	}

	var notifier notify.Notifier = notify.Noop{}
	if cfg.Notify.TelegramToken != "" {
		tg, err := notify.NewTelegram(&cfg.Notify)
		if err != nil {
			log.Warn("telegram unavailable, notifications disabled", zap.Error(err))
		} else {
			notifier = tg
		}
	}

	var chat service.ChatCompleter
	if cfg.AI.APIKey != "" {
		aiCfg := openai.DefaultConfig(cfg.AI.APIKey)
		if cfg.AI.BaseURL != "" {
			aiCfg.BaseURL = cfg.AI.BaseURL
		}
		chat = openai.NewClientWithConfig(aiCfg)
	}

	jm := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(service.Deps{
		Repo:     repo,
		JWT:      jm,
		Redis:    rc,
		Notifier: notifier,
		Chat:     chat,
		AI:       &cfg.AI,
		Logger:   log,
	})
	h := handler.NewHandler(svc, log)
	engine := router.New(cfg, h, jm, rc, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
