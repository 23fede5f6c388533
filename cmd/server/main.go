package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	archiveapp "github.com/wms/backend/internal/application/archive"
	ledgerapp "github.com/wms/backend/internal/application/ledger"
	reportapp "github.com/wms/backend/internal/application/report"
	"github.com/wms/backend/internal/infrastructure/config"
	"github.com/wms/backend/internal/infrastructure/logger"
	"github.com/wms/backend/internal/infrastructure/persistence"
	"github.com/wms/backend/internal/interfaces/http/handler"
	"github.com/wms/backend/internal/interfaces/http/middleware"
	"github.com/wms/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting warehouse backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.HTTP.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}
	log.Info("Database ready", zap.String("path", cfg.Database.Path))

	// Repositories
	inboundRepo := persistence.NewGormInboundRepository(db.DB)
	outboundRepo := persistence.NewGormOutboundRepository(db.DB)
	returnRepo := persistence.NewGormReturnRepository(db.DB)
	wholesaleRepo := persistence.NewGormWholesaleRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)

	// Seed empty master-data tables from the transaction ledgers
	backfill := archiveapp.NewBackfillService(
		productRepo, customerRepo, supplierRepo,
		inboundRepo, outboundRepo, wholesaleRepo,
		log,
	)
	if err := backfill.Run(context.Background()); err != nil {
		log.Fatal("Failed to backfill master data", zap.Error(err))
	}

	// Application services
	inboundService := ledgerapp.NewInboundService(inboundRepo)
	outboundService := ledgerapp.NewOutboundService(outboundRepo)
	returnService := ledgerapp.NewReturnService(returnRepo)
	wholesaleService := ledgerapp.NewWholesaleService(wholesaleRepo)
	archiveService := archiveapp.NewArchiveService(productRepo, customerRepo, supplierRepo)
	reportService := reportapp.NewReportService(inboundRepo, outboundRepo, returnRepo, wholesaleRepo, log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := middleware.RegisterValidators(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORS(),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	systemHandler := handler.NewSystemHandler(db, version)
	systemHandler.RegisterRoutes(engine)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewInboundHandler(inboundService))
	r.Register(handler.NewOutboundHandler(outboundService))
	r.Register(handler.NewReturnHandler(returnService))
	r.Register(handler.NewWholesaleHandler(wholesaleService))
	r.Register(handler.NewArchiveHandler(archiveService))
	r.Register(handler.NewReportHandler(reportService))
	r.Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
