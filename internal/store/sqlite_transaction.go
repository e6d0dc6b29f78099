package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/evanharte/pinboard/internal/db"
	"github.com/evanharte/pinboard/internal/engine"
)

// ErrNoTransactions is returned by Latest when a board has no applied
// transactions left to undo.
var ErrNoTransactions = fmt.Errorf("no transactions to undo")

// SQLiteTransactionRepo implements TransactionRepo on SQLite.
type SQLiteTransactionRepo struct {
	db db.DBTX
}

// NewSQLiteTransactionRepo creates a new SQLiteTransactionRepo.
func NewSQLiteTransactionRepo(dbtx db.DBTX) *SQLiteTransactionRepo {
	return &SQLiteTransactionRepo{db: dbtx}
}

func (r *SQLiteTransactionRepo) Append(ctx context.Context, boardID string, tx *engine.Transaction) error {
	actions, err := json.Marshal(tx.Actions)
	if err != nil {
		return fmt.Errorf("encoding actions: %w", err)
	}
	inverse, err := json.Marshal(tx.InverseActions)
	if err != nil {
		return fmt.Errorf("encoding inverse actions: %w", err)
	}
	query := `INSERT INTO board_transactions (id, board_id, seq, actor_user_id, actions, inverse_actions, created_at)
		VALUES (?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM board_transactions WHERE board_id = ?), ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		tx.TxID,
		boardID,
		boardID,
		tx.ActorUserID,
		string(actions),
		string(inverse),
		tx.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}
	return nil
}

func (r *SQLiteTransactionRepo) Latest(ctx context.Context, boardID string) (*engine.Transaction, error) {
	query := `SELECT id, actor_user_id, actions, inverse_actions, created_at
		FROM board_transactions WHERE board_id = ? ORDER BY seq DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, boardID)
	tx, err := scanTransaction(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNoTransactions
	}
	return tx, err
}

func (r *SQLiteTransactionRepo) Remove(ctx context.Context, boardID, txID string) error {
	query := `DELETE FROM board_transactions WHERE board_id = ? AND id = ?`
	if _, err := r.db.ExecContext(ctx, query, boardID, txID); err != nil {
		return fmt.Errorf("removing transaction: %w", err)
	}
	return nil
}

func (r *SQLiteTransactionRepo) List(ctx context.Context, boardID string, limit int) ([]*engine.Transaction, error) {
	query := `SELECT id, actor_user_id, actions, inverse_actions, created_at
		FROM board_transactions WHERE board_id = ? ORDER BY seq DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, boardID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var out []*engine.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}
	return out, nil
}

func scanTransaction(scan func(dest ...any) error) (*engine.Transaction, error) {
	var tx engine.Transaction
	var actions, inverse, createdAt string
	if err := scan(&tx.TxID, &tx.ActorUserID, &actions, &inverse, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning transaction: %w", err)
	}
	if err := json.Unmarshal([]byte(actions), &tx.Actions); err != nil {
		return nil, fmt.Errorf("decoding actions: %w", err)
	}
	if err := json.Unmarshal([]byte(inverse), &tx.InverseActions); err != nil {
		return nil, fmt.Errorf("decoding inverse actions: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	tx.CreatedAt = ts
	return &tx, nil
}
