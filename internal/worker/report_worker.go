package worker

import (
	"context"
	"fmt"
	"log/slog"

	"financas/internal/amqp"
	"financas/internal/core"
	"financas/internal/report"
	"financas/internal/sheets"
)

// LedgerLoader reloads the persisted ledger. *ledger.Store implements it.
type LedgerLoader interface {
	Load(ctx context.Context) []core.Transaction
}

// ReportWorker mirrors annual reports to a ReportWriter whenever the
// ledger changes.
type ReportWorker struct {
	ledger LedgerLoader
	writer sheets.ReportWriter
}

func NewReportWorker(ledger LedgerLoader, writer sheets.ReportWriter) *ReportWorker {
	return &ReportWorker{ledger: ledger, writer: writer}
}

// HandleLedgerEvent rewrites the report of the event's year. An event
// without a year rewrites every year present in the ledger.
func (w *ReportWorker) HandleLedgerEvent(ctx context.Context, event *amqp.LedgerEvent) error {
	txs := w.ledger.Load(ctx)

	years := []int{event.Year}
	if event.Year == 0 {
		years = report.AvailableYears(txs)
	}

	for _, year := range years {
		if err := w.mirror(ctx, txs, year); err != nil {
			return err
		}
	}

	slog.InfoContext(ctx, "Ledger event mirrored",
		"operation", event.Operation,
		"transaction_id", event.TransactionID,
		"years", years)
	return nil
}

// SyncAll mirrors every year present in the ledger. The worker runs it
// once at startup so the sheet catches up with changes made while it was
// down.
func (w *ReportWorker) SyncAll(ctx context.Context) error {
	txs := w.ledger.Load(ctx)
	for _, year := range report.AvailableYears(txs) {
		if err := w.mirror(ctx, txs, year); err != nil {
			return err
		}
	}
	return nil
}

func (w *ReportWorker) mirror(ctx context.Context, txs []core.Transaction, year int) error {
	rep := report.BuildAnnualReport(txs, year)
	rows := sheets.ReportRows(txs, rep)
	if err := w.writer.WriteReport(ctx, year, rows); err != nil {
		return fmt.Errorf("write report %d: %w", year, err)
	}
	slog.DebugContext(ctx, "Report mirrored", "year", year, "rows", len(rows))
	return nil
}
