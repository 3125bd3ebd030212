package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/andrewarnaud1/mymanager/config"
	"github.com/andrewarnaud1/mymanager/internal/api/handler"
	"github.com/andrewarnaud1/mymanager/internal/api/router"
	"github.com/andrewarnaud1/mymanager/internal/repository"
	"github.com/andrewarnaud1/mymanager/internal/service"
	"github.com/andrewarnaud1/mymanager/pkg/database"
	"github.com/andrewarnaud1/mymanager/pkg/jwt"
	"github.com/andrewarnaud1/mymanager/pkg/logger"
	"github.com/andrewarnaud1/mymanager/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	db, err := database.NewDB(&cfg.Database, zlog)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, zlog); err != nil {
		return err
	}

	// Redis is optional: without it token revocation and rate limiting
	// degrade gracefully.
	rdb, err := redis.NewClient(&cfg.Redis, zlog)
	if err != nil {
		zlog.Warn("redis unavailable, running without token blacklist and rate limiting",
			zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, zlog)
	h := handler.NewHandler(svc, zlog)

	engine := router.Setup(cfg, h, jwtMgr, rdb, zlog)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("server listening", zap.String("addr", srv.Addr))
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
		zlog.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	zlog.Info("server stopped")
	return nil
}
