package main

import (
	"fmt"
	"net"
	"time"

	"golang.org/x/sync/errgroup"

	"financas/internal/amqp"
	"financas/internal/cache"
	"financas/internal/cli"
	"financas/internal/config"
	apphttp "financas/internal/http"
	"financas/internal/insights"
	applog "financas/internal/log"
	"financas/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(applog.ComponentApp)
	cfg := cli.LoadAndValidateConfig(logger)

	if err := run(logger, cfg); err != nil {
		cli.Fatal(logger, "Server error", err)
	}
	logger.Info("Server stopped gracefully")
}

func run(logger *applog.Logger, cfg *config.Config) error {
	ctx, stop := cli.SignalContext(logger)
	defer stop()

	store, cleanup, err := cli.OpenLedger(ctx, logger, cfg)
	if err != nil {
		return fmt.Errorf("open storage backend: %w", err)
	}

	// A nil interface, not a nil *amqp.Client, disables publishing.
	var publisher services.Publisher
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			_ = cleanup()
			return fmt.Errorf("initialize AMQP client: %w", err)
		}
		publisher = client
		logger.Info("Ledger events enabled", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	} else {
		logger.Info("Ledger events disabled - no AMQP_URL provided")
	}

	reports := services.NewReportService(store, cfg.ReportCacheSize, cfg.ReportCacheTTL)
	ledgerSvc := services.NewLedgerService(store, publisher, reports)
	defer func() {
		if err := ledgerSvc.Close(); err != nil {
			logger.Error("Shutdown cleanup failed", applog.FieldError, err)
		}
	}()

	caches := cache.NewManager()
	caches.Register("annual_reports", reports.Cache())

	if cfg.GeminiAPIKey == "" {
		logger.Warn("No GEMINI_API_KEY configured, insights will use the fallback text")
	}
	requester := insights.NewRequester(insights.NewOpenAIGenerator(insights.GeneratorConfig{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
	}), cfg.InsightsTimeout)

	srv := apphttp.NewServer(apphttp.Options{
		Addr:               net.JoinHostPort("", cfg.Port),
		AllowedOrigins:     cfg.CORSAllowedOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		Logger:             logger,
	}, apphttp.NewHandler(ledgerSvc, reports, requester))
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 60 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	logger.Info("Starting financas server",
		"port", cfg.Port,
		"backend", cfg.DataBackend,
		"transactions", len(store.List()))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		return caches.Run(gctx, time.Minute)
	})
	return g.Wait()
}
