// Package ledger owns the canonical transaction collection. It is loaded
// once from a storage slot and written back in full after every mutation.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"financas/internal/core"
	"financas/internal/storage"
)

// DefaultKey is the slot holding the serialized collection.
const DefaultKey = "transactions"

type Store struct {
	mu       sync.Mutex
	slot     storage.Slot
	key      string
	newID    func() string
	logger   *slog.Logger
	items    []core.Transaction
	revision uint64
}

type Option func(*Store)

// WithKey overrides the slot key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithIDGenerator replaces NewID, mostly for tests.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

func New(slot storage.Slot, opts ...Option) *Store {
	s := &Store{
		slot:   slot,
		key:    DefaultKey,
		newID:  NewID,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory collection with the persisted one and
// returns a copy of it. A missing, unreadable or malformed slot yields the
// seed dataset; Load itself never fails.
func (s *Store) Load(ctx context.Context) []core.Transaction {
	items := s.read(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.revision++
	return clone(s.items)
}

func (s *Store) read(ctx context.Context) []core.Transaction {
	raw, err := s.slot.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.InfoContext(ctx, "No persisted transactions, using seed data", "key", s.key)
		return core.SeedTransactions()
	}
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to read transactions, using seed data", "key", s.key, "error", err)
		return core.SeedTransactions()
	}
	items, err := Decode(raw)
	if err != nil {
		s.logger.WarnContext(ctx, "Persisted transactions are malformed, using seed data", "key", s.key, "error", err)
		return core.SeedTransactions()
	}
	s.logger.InfoContext(ctx, "Transactions loaded", "key", s.key, "count", len(items))
	return items
}

// Add validates n, assigns a fresh id and prepends the record. The full
// collection is saved before Add returns; on a save failure the collection
// is left as it was.
func (s *Store) Add(ctx context.Context, n core.NewTransaction) (core.Transaction, error) {
	if err := n.Validate(); err != nil {
		return core.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := core.Transaction{
		ID:          s.uniqueID(),
		Description: n.Description,
		Amount:      n.Amount,
		Date:        n.Date,
		Type:        n.Type,
		Category:    n.Category,
	}

	next := make([]core.Transaction, 0, len(s.items)+1)
	next = append(next, tx)
	next = append(next, s.items...)

	if err := s.save(ctx, next); err != nil {
		return core.Transaction{}, fmt.Errorf("add transaction: %w", err)
	}
	s.items = next
	s.revision++
	return tx, nil
}

// Remove deletes the record with the given id. A missing id is not an
// error; the collection is saved either way.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]core.Transaction, 0, len(s.items))
	removed := false
	for _, tx := range s.items {
		if tx.ID == id {
			removed = true
			continue
		}
		next = append(next, tx)
	}

	if err := s.save(ctx, next); err != nil {
		return false, fmt.Errorf("remove transaction: %w", err)
	}
	s.items = next
	if removed {
		s.revision++
	}
	return removed, nil
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (core.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range s.items {
		if tx.ID == id {
			return tx, true
		}
	}
	return core.Transaction{}, false
}

// List returns a copy of the collection in insertion order.
func (s *Store) List() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.items)
}

// Revision changes whenever the collection content changes.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// Ping checks the underlying slot backend.
func (s *Store) Ping(ctx context.Context) error {
	return s.slot.Ping(ctx)
}

func (s *Store) Close() error {
	return s.slot.Close()
}

func (s *Store) save(ctx context.Context, items []core.Transaction) error {
	raw, err := Encode(items)
	if err != nil {
		return err
	}
	if err := s.slot.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("save transactions: %w", err)
	}
	return nil
}

// uniqueID retries the generator on the off chance of a collision.
func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		taken := false
		for _, tx := range s.items {
			if tx.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}

// Encode serializes a collection to the persisted JSON array form.
func Encode(items []core.Transaction) (string, error) {
	if items == nil {
		items = []core.Transaction{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode transactions: %w", err)
	}
	return string(data), nil
}

// Decode parses a persisted JSON array and checks every record.
func Decode(raw string) ([]core.Transaction, error) {
	var items []core.Transaction
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	if items == nil {
		return nil, errors.New("decode transactions: null collection")
	}
	for i, tx := range items {
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("decode transactions: record %d: %w", i, err)
		}
	}
	return items, nil
}

func clone(items []core.Transaction) []core.Transaction {
	return append([]core.Transaction(nil), items...)
}
