package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openpays/checkout-orchestrator/internal/application"
	"github.com/openpays/checkout-orchestrator/internal/application/services"
	"github.com/openpays/checkout-orchestrator/internal/config"
	"github.com/openpays/checkout-orchestrator/internal/domain"
	"github.com/openpays/checkout-orchestrator/internal/infrastructure/processor"
	"github.com/openpays/checkout-orchestrator/internal/infrastructure/store"
	"github.com/openpays/checkout-orchestrator/internal/interfaces/rest/handlers"
	"github.com/openpays/checkout-orchestrator/internal/interfaces/rest/middleware"
	"github.com/openpays/checkout-orchestrator/internal/observability"
	"github.com/openpays/checkout-orchestrator/internal/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting checkout orchestrator",
		"port", cfg.Server.Port,
		"store_driver", cfg.Store.Driver,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := observability.NewMetrics(registry)

	var (
		refStore    application.ReferenceStore
		memoryStore *store.MemoryStore
		db          *store.DB
	)
	switch cfg.Store.Driver {
	case "postgres":
		db, err = store.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		pgStore := store.NewPostgresStore(db)
		if err := pgStore.Migrate(ctx); err != nil {
			logger.Error("failed to migrate reference store", "error", err)
			os.Exit(1)
		}
		refStore = pgStore
	default:
		memoryStore = store.NewMemoryStore()
		refStore = memoryStore
	}

	processorClient := processor.NewProcessorClient(cfg.Processor)

	builder := application.NewRequestBuilder(application.MerchantContext{
		MerchantAccount: cfg.Processor.MerchantAccount,
		Channel:         cfg.Checkout.Channel,
		Currency:        cfg.Checkout.Currency,
		CountryCode:     cfg.Checkout.CountryCode,
		ReturnURLBase:   cfg.Checkout.ReturnURLBase,
		ShopperEmail:    cfg.Checkout.ShopperEmail,
		BillingAddress: application.BillingAddress{
			City:              cfg.Checkout.BillingCity,
			Country:           cfg.Checkout.BillingCountry,
			PostalCode:        cfg.Checkout.BillingPostal,
			Street:            cfg.Checkout.BillingStreet,
			HouseNumberOrName: cfg.Checkout.BillingHouse,
		},
	})

	checkoutService := services.NewCheckoutService(builder, processorClient, refStore, metrics, logger)

	h := handlers.NewHandlers(
		checkoutService,
		domain.Money{Amount: cfg.Checkout.AmountMinor, Currency: cfg.Checkout.Currency},
		cfg.Processor.ClientKey,
		cfg.Primary.Env,
		logger,
	)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	handler := middleware.Recovery(logger)(mux)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	if memoryStore != nil {
		sweeper := worker.NewReferenceSweeper(memoryStore, cfg.Sweeper.Interval, cfg.Sweeper.TTL, logger)
		go sweeper.Start(workerCtx)
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
