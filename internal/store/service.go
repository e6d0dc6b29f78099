package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/evanharte/pinboard/internal/board"
	"github.com/evanharte/pinboard/internal/db"
	"github.com/evanharte/pinboard/internal/engine"
	"github.com/evanharte/pinboard/internal/router"
)

// BoardService is the persistent facade over the compiler and executor:
// load a snapshot, compile previews, execute the plan, and when execution
// succeeds write the diff and the transaction record in one SQLite
// transaction.
type BoardService struct {
	uow      db.UnitOfWork
	boards   BoardRepo
	txs      TransactionRepo
	resolver router.Resolver
	observer engine.Observer
}

// NewBoardService wires a BoardService over an open database handle.
func NewBoardService(database *sql.DB, observer engine.Observer) *BoardService {
	return NewBoardServiceWith(
		db.NewSQLiteUnitOfWork(database),
		NewSQLiteBoardRepo(database),
		NewSQLiteTransactionRepo(database),
		observer,
	)
}

// NewBoardServiceWith wires a BoardService from explicit collaborators.
func NewBoardServiceWith(uow db.UnitOfWork, boards BoardRepo, txs TransactionRepo, observer engine.Observer) *BoardService {
	if observer == nil {
		observer = engine.NoopObserver{}
	}
	return &BoardService{
		uow:      uow,
		boards:   boards,
		txs:      txs,
		resolver: router.New(),
		observer: observer,
	}
}

// Snapshot loads the current object snapshot of a board. A board that was
// never written to comes back as an empty record.
func (s *BoardService) Snapshot(ctx context.Context, boardID string) (board.Record, error) {
	return s.boards.Load(ctx, boardID)
}

// Compile translates tool-call previews into a plan against the board's
// current snapshot. Nothing is persisted.
func (s *BoardService) Compile(ctx context.Context, boardID, actorUserID, message string, previews []engine.Preview) (*engine.Plan, error) {
	snapshot, err := s.boards.Load(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return engine.BuildPlan(engine.BuildInput{
		Previews:       previews,
		CurrentObjects: snapshot,
		ActorUserID:    actorUserID,
		Message:        message,
		Resolver:       s.resolver,
	})
}

// Apply executes a plan against the board's current snapshot and, on
// success, persists the resulting diff and the transaction record
// atomically. A failed execution persists nothing and is reported through
// the returned result, not an error.
func (s *BoardService) Apply(ctx context.Context, boardID, actorUserID string, plan *engine.Plan) (engine.Result, error) {
	snapshot, err := s.boards.Load(ctx, boardID)
	if err != nil {
		return engine.Result{}, err
	}

	res := engine.Execute(engine.ExecuteInput{
		Plan:           plan,
		CurrentObjects: snapshot,
		ActorUserID:    actorUserID,
		Resolver:       s.resolver,
		Observer:       s.observer,
	})
	if !res.OK {
		return res, nil
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return s.persistResult(ctx, tx, boardID, res, true)
	})
	if err != nil {
		return engine.Result{}, fmt.Errorf("persisting plan result: %w", err)
	}
	return res, nil
}

// CompileAndApply is the one-call path used by the tool server: previews
// in, applied result out.
func (s *BoardService) CompileAndApply(ctx context.Context, boardID, actorUserID, message string, previews []engine.Preview) (engine.Result, error) {
	plan, err := s.Compile(ctx, boardID, actorUserID, message, previews)
	if err != nil {
		return engine.Result{}, err
	}
	return s.Apply(ctx, boardID, actorUserID, plan)
}

// Undo pops the board's most recent transaction and applies its inverse
// actions. The undone transaction is removed from the log together with
// the snapshot changes, so a failure leaves both untouched.
func (s *BoardService) Undo(ctx context.Context, boardID, actorUserID string) (engine.Result, error) {
	last, err := s.txs.Latest(ctx, boardID)
	if err != nil {
		return engine.Result{}, err
	}

	snapshot, err := s.boards.Load(ctx, boardID)
	if err != nil {
		return engine.Result{}, err
	}

	res := engine.Execute(engine.ExecuteInput{
		Plan:           last.InversePlan(),
		CurrentObjects: snapshot,
		ActorUserID:    actorUserID,
		Resolver:       s.resolver,
		Observer:       s.observer,
	})
	if !res.OK {
		return res, nil
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := s.persistResult(ctx, tx, boardID, res, false); err != nil {
			return err
		}
		return NewSQLiteTransactionRepo(tx).Remove(ctx, boardID, last.TxID)
	})
	if err != nil {
		return engine.Result{}, fmt.Errorf("persisting undo result: %w", err)
	}
	return res, nil
}

// History returns the most recent applied transactions, newest first.
func (s *BoardService) History(ctx context.Context, boardID string, limit int) ([]*engine.Transaction, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.txs.List(ctx, boardID, limit)
}

// persistResult writes an execution result's diff inside an open
// transaction; recordTx additionally appends the transaction to the log.
func (s *BoardService) persistResult(ctx context.Context, tx db.DBTX, boardID string, res engine.Result, recordTx bool) error {
	boards := NewSQLiteBoardRepo(tx)
	if err := boards.EnsureBoard(ctx, boardID); err != nil {
		return err
	}
	for _, id := range res.Diff.CreatedIDs {
		if err := boards.Put(ctx, boardID, res.NextObjects[id]); err != nil {
			return err
		}
	}
	for _, id := range res.Diff.UpdatedIDs {
		if err := boards.Put(ctx, boardID, res.NextObjects[id]); err != nil {
			return err
		}
	}
	for _, id := range res.Diff.DeletedIDs {
		if err := boards.Delete(ctx, boardID, id); err != nil {
			return err
		}
	}
	if recordTx && res.Transaction != nil {
		if err := NewSQLiteTransactionRepo(tx).Append(ctx, boardID, res.Transaction); err != nil {
			return err
		}
	}
	return nil
}
