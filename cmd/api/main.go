package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"biztime/internal/app"
	"biztime/internal/bootstrap"
	"biztime/internal/config"
	"biztime/internal/logger"
	"biztime/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	apperror.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// build dependency + routes
	a, err := app.BuildApp(ctx, cfg, log)
	if err != nil {
		log.Error("build app failed", zap.Error(err))
		os.Exit(1)
	}

	err = bootstrap.StartHTTPServer(ctx,
		a.Router,
		bootstrap.ServerConfig{
			Port:            cfg.App.Port,
			ReadTimeout:     cfg.HTTP.ReadTimeout,
			WriteTimeout:    cfg.HTTP.WriteTimeout,
			IdleTimeout:     cfg.HTTP.IdleTimeout,
			ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		},
		bootstrap.NewStdoutAuditLogger(log),
		a.DB,
	)
	if err != nil {
		log.Error("server stopped with error", zap.Error(err))
		stop()
		os.Exit(1)
	}
}
