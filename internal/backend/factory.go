package backend

import (
	"context"
	"fmt"
	"log/slog"

	"financas/internal/storage"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{
		logger: logger,
	}
}

// CreateBackend opens the slot selected by config.Type.
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var (
		slot storage.Slot
		err  error
	)
	switch config.Type {
	case MemoryBackend:
		slot = storage.NewMemorySlot()
	case FileBackend:
		slot, err = storage.NewFileSlot(config.DataDirectory)
	case SQLiteBackend:
		slot, err = storage.NewSQLiteSlot(config.SQLiteDBPath)
	case PostgresBackend:
		slot, err = storage.NewPostgresSlot(ctx, config.DatabaseURL)
	case RedisBackend:
		slot, err = storage.NewRedisSlot(ctx, config.RedisURL, config.RedisPrefix)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s backend: %w", config.Type, err)
	}

	f.logger.InfoContext(ctx, "Initialized storage backend",
		"backend", config.Type,
		"shared", config.Type.Shared())

	return &BackendResult{
		Slot:    slot,
		Cleanup: slot.Close,
	}, nil
}
