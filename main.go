package main

import (
	"context"
	"log"

	"wa-console/internal/bootstrap"
	"wa-console/internal/config"
	"wa-console/internal/observability"
	"wa-console/internal/server"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var logOpts []observability.LoggerOption
	if !cfg.IsProduction() {
		logOpts = append(logOpts, observability.WithLevel(zapcore.DebugLevel))
	}
	logger := observability.NewLogger(logOpts...)
	defer logger.Sync()
	ctx := context.Background()

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()
	if err := srv.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start server", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Fatal(ctx, "server shutdown failed", err)
	}
}
