package main

import (
	"context"
	"errors"
	"fmt"

	"financas/internal/amqp"
	"financas/internal/cli"
	"financas/internal/config"
	applog "financas/internal/log"
	"financas/internal/sheets"
	gsheet "financas/internal/sheets/google"
	mem "financas/internal/sheets/memory"
	"financas/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(applog.ComponentWorker)
	logger.Info("Starting financas-worker")

	cfg := cli.LoadAndValidateConfig(logger)
	if err := cfg.ValidateWorker(); err != nil {
		cli.Fatal(logger, "Worker configuration validation failed", err)
	}

	if err := run(logger, cfg); err != nil {
		cli.Fatal(logger, "Worker error", err)
	}
	logger.Info("Worker stopped gracefully")
}

func run(logger *applog.Logger, cfg *config.Config) error {
	ctx, stop := cli.SignalContext(logger)
	defer stop()

	store, cleanup, err := cli.OpenLedger(ctx, logger, cfg)
	if err != nil {
		return fmt.Errorf("open storage backend: %w", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Error("Storage cleanup failed", applog.FieldError, err)
		}
	}()

	var writer sheets.ReportWriter
	if cfg.GoogleSpreadsheetID != "" {
		client, err := gsheet.NewFromEnv(ctx)
		if err != nil {
			return fmt.Errorf("initialize Google Sheets client: %w", err)
		}
		writer = client
		logger.Info("Google Sheets mirror enabled", "spreadsheet_id", cfg.GoogleSpreadsheetID)
	} else {
		writer = loggingWriter{Writer: mem.New(), logger: logger.WithComponent(applog.ComponentSheets)}
		logger.Info("Google Sheets disabled - no GOOGLE_SPREADSHEET_ID provided, reports stay in memory")
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		return fmt.Errorf("initialize AMQP client: %w", err)
	}
	defer amqpClient.Close()

	reportWorker := worker.NewReportWorker(store, writer)

	// Catch up on changes made while the worker was down.
	logger.Info("Performing startup report sync")
	if err := reportWorker.SyncAll(ctx); err != nil {
		logger.Error("Startup report sync failed", applog.FieldError, err)
	}

	err = amqpClient.ConsumeLedgerEvents(ctx, reportWorker.HandleLedgerEvent)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loggingWriter keeps reports in memory and logs each write.
type loggingWriter struct {
	*mem.Writer
	logger *applog.Logger
}

func (w loggingWriter) WriteReport(ctx context.Context, year int, rows [][]string) error {
	if err := w.Writer.WriteReport(ctx, year, rows); err != nil {
		return err
	}
	w.logger.InfoContext(ctx, "Report mirrored in memory",
		applog.FieldYear, year,
		"rows", len(rows),
		"writes", w.Writes())
	for _, row := range rows {
		w.logger.DebugContext(ctx, "Report row", applog.FieldYear, year, "row", row)
	}
	return nil
}
