package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/evanharte/pinboard/internal/board"
	"github.com/evanharte/pinboard/internal/db"
)

// SQLiteBoardRepo implements BoardRepo on SQLite. It accepts a db.DBTX so
// the same repository code runs against the bare connection or inside a
// unit-of-work transaction.
type SQLiteBoardRepo struct {
	db db.DBTX
}

// NewSQLiteBoardRepo creates a new SQLiteBoardRepo.
func NewSQLiteBoardRepo(dbtx db.DBTX) *SQLiteBoardRepo {
	return &SQLiteBoardRepo{db: dbtx}
}

func (r *SQLiteBoardRepo) EnsureBoard(ctx context.Context, boardID string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	query := `INSERT INTO boards (id, name, created_at, updated_at) VALUES (?, '', ?, ?)
		ON CONFLICT(id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, boardID, now, now); err != nil {
		return fmt.Errorf("ensuring board: %w", err)
	}
	return nil
}

// Load reads every object row of a board into a snapshot. Each row's JSON
// payload goes through the loader normalizer, so rows written by older
// versions or edited by hand come back as valid objects or are dropped.
func (r *SQLiteBoardRepo) Load(ctx context.Context, boardID string) (board.Record, error) {
	query := `SELECT data FROM board_objects WHERE board_id = ? ORDER BY z_index, object_id`
	rows, err := r.db.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, fmt.Errorf("listing board objects: %w", err)
	}
	defer rows.Close()

	rec := board.Record{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning board object row: %w", err)
		}
		var raw map[string]any
		if err := json.Unmarshal([]byte(data), &raw); err != nil {
			continue
		}
		if o := board.NormalizeLoaded(raw, ""); o != nil {
			rec[o.ID] = *o
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating board objects: %w", err)
	}
	return rec, nil
}

func (r *SQLiteBoardRepo) Put(ctx context.Context, boardID string, obj board.Object) error {
	data, err := json.Marshal(board.Sanitize(obj))
	if err != nil {
		return fmt.Errorf("encoding board object: %w", err)
	}
	query := `INSERT INTO board_objects (board_id, object_id, object_type, z_index, data)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(board_id, object_id) DO UPDATE SET
			object_type = excluded.object_type,
			z_index     = excluded.z_index,
			data        = excluded.data`
	if _, err := r.db.ExecContext(ctx, query, boardID, obj.ID, string(obj.Type), obj.ZIndex, string(data)); err != nil {
		return fmt.Errorf("upserting board object: %w", err)
	}
	return nil
}

func (r *SQLiteBoardRepo) Delete(ctx context.Context, boardID, objectID string) error {
	query := `DELETE FROM board_objects WHERE board_id = ? AND object_id = ?`
	if _, err := r.db.ExecContext(ctx, query, boardID, objectID); err != nil {
		return fmt.Errorf("deleting board object: %w", err)
	}
	return nil
}
