// Package storage persists named string slots. The ledger lives in one slot
// holding its JSON serialization; every backend here is an interchangeable
// home for that slot.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the slot has never been written.
var ErrNotFound = errors.New("slot not found")

// Slot is a string-keyed persistent store.
type Slot interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}
