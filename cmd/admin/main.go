package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/martadmin/gateway"
	"github.com/example/martadmin/pkg/api"
	"github.com/example/martadmin/pkg/audit"
	"github.com/example/martadmin/pkg/config"
	"github.com/example/martadmin/pkg/listview"
	"github.com/example/martadmin/pkg/session"
	"github.com/example/martadmin/pkg/store"
	"github.com/example/martadmin/pkg/theme"
	"go.uber.org/zap"
)

func main() {
	// Load config
	cfg, err := config.Load("config/admin-config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting admin console",
		zap.String("upstream", cfg.Upstream.BaseURL),
		zap.Int("port", cfg.Gateway.Port))

	ctx := context.Background()

	// Durable key-value store for session and theme state
	kv := store.NewRedisKV(&cfg.Redis)
	defer kv.Close()
	if err := kv.Ping(ctx); err != nil {
		logger.Warn("Redis connection failed", zap.Error(err))
	} else {
		logger.Info("Redis connected successfully")
	}

	// Audit trail; the console still works without it
	auditor, err := audit.NewRecorder(&cfg.MongoDB, logger)
	if err != nil {
		logger.Warn("Audit recorder unavailable", zap.Error(err))
	} else {
		defer auditor.Close(ctx)
		if err := auditor.Ping(ctx); err != nil {
			logger.Warn("MongoDB connection failed", zap.Error(err))
		} else {
			logger.Info("MongoDB connected successfully")
		}
	}

	sess := session.New(kv, logger)
	if err := sess.Restore(ctx); err != nil {
		logger.Warn("Session restore failed", zap.Error(err))
	}

	th := theme.New(kv)
	th.Restore(ctx)

	client := api.NewClient(cfg.Upstream.BaseURL, sess, logger)
	notify := listview.NewLogNotifier(logger)
	ctrl := gateway.NewControllers(client, logger, notify, auditor)

	gw := gateway.NewGateway(cfg, logger, client, sess, th, auditor, ctrl)
	gw.SetupRoutes()

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		if err := gw.Start(); err != nil {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Fatal("Server error", zap.Error(err))
	case sig := <-sigCh:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
	}
}
