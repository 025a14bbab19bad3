package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"financas/internal/amqp"
	"financas/internal/core"
	"financas/internal/ledger"
	applog "financas/internal/log"
)

// Publisher announces ledger changes. *amqp.Client implements it.
type Publisher interface {
	PublishLedgerEvent(ctx context.Context, event *amqp.LedgerEvent) error
	Close() error
}

var _ Publisher = (*amqp.Client)(nil)

// LedgerService orchestrates mutations across the store, the report cache
// and the change event publisher.
type LedgerService struct {
	store     *ledger.Store
	publisher Publisher
	reports   *ReportService
}

// NewLedgerService accepts a nil publisher and a nil report service.
func NewLedgerService(store *ledger.Store, publisher Publisher, reports *ReportService) *LedgerService {
	return &LedgerService{
		store:     store,
		publisher: publisher,
		reports:   reports,
	}
}

// Create stores the transaction and then announces it. Only the store
// write can fail the call.
func (s *LedgerService) Create(ctx context.Context, n core.NewTransaction) (core.Transaction, error) {
	tx, err := s.store.Add(ctx, n)
	if err != nil {
		return core.Transaction{}, err
	}
	s.invalidate()

	applog.FromContext(ctx).LogFields(ctx, slog.LevelInfo, "Transaction created",
		applog.NewFields().
			WithOperation(applog.OpCreate).
			WithTransaction(tx.ID, tx.Type.String(), tx.Category.String(), tx.Amount.String()))

	if err := s.publish(ctx, amqp.NewLedgerEvent(amqp.OperationAdd, tx.ID, tx.Date.Year())); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ledger event",
			"id", tx.ID, "operation", amqp.OperationAdd, "error", err)
	}
	return tx, nil
}

// Delete removes id if present. Removing an unknown id succeeds and
// reports false.
func (s *LedgerService) Delete(ctx context.Context, id string) (bool, error) {
	existing, found := s.store.Get(id)

	removed, err := s.store.Remove(ctx, id)
	if err != nil {
		return false, err
	}
	applog.FromContext(ctx).InfoContext(ctx, "Transaction deleted",
		applog.FieldTransactionID, id,
		applog.FieldRemoved, removed)
	if !removed {
		return false, nil
	}
	s.invalidate()

	year := 0
	if found {
		year = existing.Date.Year()
	}
	if err := s.publish(ctx, amqp.NewLedgerEvent(amqp.OperationRemove, id, year)); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ledger event",
			"id", id, "operation", amqp.OperationRemove, "error", err)
	}
	return true, nil
}

// Transactions returns the full collection in store order.
func (s *LedgerService) Transactions() []core.Transaction {
	return s.store.List()
}

func (s *LedgerService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *LedgerService) publish(ctx context.Context, event *amqp.LedgerEvent) error {
	if s.publisher == nil {
		slog.DebugContext(ctx, "AMQP publisher not configured, skipping ledger event")
		return nil
	}
	return s.publisher.PublishLedgerEvent(ctx, event)
}

func (s *LedgerService) invalidate() {
	if s.reports != nil {
		s.reports.Invalidate()
	}
}

// Close closes the store and the publisher.
func (s *LedgerService) Close() error {
	var errs []error

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp: %w", err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("close ledger service: %w", err)
	}
	return nil
}
