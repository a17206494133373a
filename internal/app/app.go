package app

import (
	"context"
	"fmt"

	"biztime/internal/company"
	"biztime/internal/config"
	"biztime/internal/health"
	"biztime/internal/invoice"
	"biztime/internal/logger"
	"biztime/internal/middleware"
	"biztime/internal/shared/database"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Router *gin.Engine
	DB     *database.Gateway
}

// BuildApp connects to the database and wires every module onto a router.
func BuildApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	gormDB, err := database.Connect(ctx, database.Options{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Name:            cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		Logger:          logger.NewGormLogger(log, logger.GormLevel(cfg.Log.Level), cfg.Log.SlowQueryThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	log.Info("database connection established",
		zap.String("host", cfg.Database.Host),
		zap.String("dbname", cfg.Database.DBName),
	)

	return New(database.NewGateway(gormDB), cfg.HTTP, log), nil
}

// New wires repositories, services and handlers over an open gateway.
func New(gw *database.Gateway, httpCfg config.HTTPConfig, log *zap.Logger) *App {
	// --- Repositories ---
	companyRepo := company.NewRepository(gw)
	invoiceRepo := invoice.NewRepository(gw)

	// --- Services ---
	companyService := company.NewService(companyRepo)
	invoiceService := invoice.NewService(invoiceRepo, companyRepo)

	// --- Handlers ---
	handlers := Handlers{
		Health:         health.NewHandler(gw, log),
		Company:        company.NewHandler(companyService, log),
		Invoice:        invoice.NewHandler(invoiceService, log),
		RequireCompany: middleware.RequireCompany(companyService),
	}

	return &App{
		Router: NewRouter(httpCfg, log, Routes(handlers)),
		DB:     gw,
	}
}
