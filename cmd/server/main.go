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

	"go.uber.org/zap"

	catalogapp "github.com/catalogozord/backend/internal/application/catalog"
	inventoryapp "github.com/catalogozord/backend/internal/application/inventory"
	supplierapp "github.com/catalogozord/backend/internal/application/supplier"
	"github.com/catalogozord/backend/internal/infrastructure/auth"
	"github.com/catalogozord/backend/internal/infrastructure/config"
	"github.com/catalogozord/backend/internal/infrastructure/erp"
	"github.com/catalogozord/backend/internal/infrastructure/logger"
	"github.com/catalogozord/backend/internal/infrastructure/persistence"
	"github.com/catalogozord/backend/internal/interfaces/http/handler"
	"github.com/catalogozord/backend/internal/interfaces/http/router"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	log.Info("starting",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
	)

	db, err := persistence.NewDatabase(cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	gateway, err := erp.NewClient(erp.Config{
		BaseURL:     cfg.ERP.BaseURL,
		Token:       cfg.ERP.Token,
		Secret:      cfg.ERP.Secret,
		StoreID:     cfg.ERP.StoreID,
		CDNBaseURL:  cfg.ERP.CDNBaseURL,
		WarehouseID: cfg.ERP.WarehouseID,
		PriceListID: cfg.ERP.PriceListID,
		Timeout:     cfg.ERP.Timeout,
	}, log)
	if err != nil {
		return err
	}

	entryRepo := persistence.NewGormEntryRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	extraRepo := persistence.NewGormExtraRepository(db.DB)

	catalogService := catalogapp.NewCatalogService(entryRepo, extraRepo, gateway, log)
	syncService := catalogapp.NewSyncService(gateway, entryRepo, log)
	enrichmentService := catalogapp.NewEnrichmentService(gateway, catalogapp.EnrichmentOptions{
		Workers:          cfg.Enrichment.Workers,
		RequestInterval:  cfg.Enrichment.RequestInterval,
		RateLimitBackoff: cfg.Enrichment.RateLimitBackoff,
	}, log)
	movementService := inventoryapp.NewMovementService(gateway, log)
	priceService := inventoryapp.NewPriceService(gateway, log)
	supplierService := supplierapp.NewService(supplierRepo, log)
	extraService := supplierapp.NewExtraService(extraRepo, log)

	verifier := auth.NewTokenVerifier(cfg.Auth.Secret, cfg.Auth.Issuer)

	engine := router.New(router.Config{
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Environment: cfg.App.Env,
	}, router.Handlers{
		System:    handler.NewSystemHandler(db, log),
		Catalog:   handler.NewCatalogHandler(catalogService, syncService, enrichmentService, log),
		Inventory: handler.NewInventoryHandler(movementService, log),
		Price:     handler.NewPriceHandler(priceService, log),
		Extra:     handler.NewExtraHandler(extraService, log),
		Supplier:  handler.NewSupplierHandler(supplierService, log),
	}, verifier, log)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("stopped")
	return nil
}
