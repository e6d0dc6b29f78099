// Package store persists board snapshots and their transaction log in
// SQLite, and exposes BoardService as the single entry point that ties
// compilation, execution, and persistence together.
package store

import (
	"context"

	"github.com/evanharte/pinboard/internal/board"
	"github.com/evanharte/pinboard/internal/engine"
)

// BoardRepo persists board object snapshots.
type BoardRepo interface {
	EnsureBoard(ctx context.Context, boardID string) error
	Load(ctx context.Context, boardID string) (board.Record, error)
	Put(ctx context.Context, boardID string, obj board.Object) error
	Delete(ctx context.Context, boardID, objectID string) error
}

// TransactionRepo persists the append-only per-board transaction log.
type TransactionRepo interface {
	Append(ctx context.Context, boardID string, tx *engine.Transaction) error
	Latest(ctx context.Context, boardID string) (*engine.Transaction, error)
	Remove(ctx context.Context, boardID, txID string) error
	List(ctx context.Context, boardID string, limit int) ([]*engine.Transaction, error)
}
