package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/evanharte/pinboard/internal/board"
	"github.com/evanharte/pinboard/internal/engine"
	"github.com/evanharte/pinboard/internal/store"
	"github.com/evanharte/pinboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *store.BoardService {
	t.Helper()
	return store.NewBoardService(testutil.NewTestDB(t), nil)
}

func TestBoardService_EmptyBoardSnapshot(t *testing.T) {
	svc := newTestService(t)

	snap, err := svc.Snapshot(context.Background(), "b1")
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestBoardService_ApplyPersistsSnapshot(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res, err := svc.CompileAndApply(ctx, "b1", "alice", "first note", []engine.Preview{
		{Name: engine.ToolCreateStickyNote, Input: map[string]any{
			"id": "s1", "x": 10.0, "y": 20.0, "text": "hello",
		}},
	})
	require.NoError(t, err)
	require.True(t, res.OK)

	snap, err := svc.Snapshot(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, snap, 1)

	loaded := snap["s1"]
	assert.Equal(t, board.TypeSticky, loaded.Type)
	assert.Equal(t, "hello", loaded.Text)
	assert.Equal(t, 10.0, loaded.X)
	assert.Equal(t, "alice", loaded.CreatedBy)
}

func TestBoardService_FailedPlanPersistsNothing(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res, err := svc.CompileAndApply(ctx, "b1", "alice", "", []engine.Preview{
		{Name: engine.ToolCreateStickyNote, Input: map[string]any{
			"id": "s1", "x": 0.0, "y": 0.0,
		}},
		{Name: engine.ToolMoveObject, Input: map[string]any{
			"objectId": "ghost", "x": 1.0, "y": 1.0,
		}},
	})
	require.NoError(t, err, "execution failure is reported via the result, not an error")
	require.False(t, res.OK)
	assert.Equal(t, 1, res.FailedActionIndex)

	snap, err := svc.Snapshot(ctx, "b1")
	require.NoError(t, err)
	assert.Empty(t, snap, "a failed plan leaves the board untouched")

	txs, err := svc.History(ctx, "b1", 10)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestBoardService_UpdateAndDeleteRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CompileAndApply(ctx, "b1", "alice", "", []engine.Preview{
		{Name: engine.ToolCreateStickyNote, Input: map[string]any{
			"id": "s1", "x": 0.0, "y": 0.0, "text": "v1",
		}},
	})
	require.NoError(t, err)

	res, err := svc.CompileAndApply(ctx, "b1", "bob", "", []engine.Preview{
		{Name: engine.ToolUpdateText, Input: map[string]any{"objectId": "s1", "newText": "v2"}},
	})
	require.NoError(t, err)
	require.True(t, res.OK)
	assert.Equal(t, []string{"s1"}, res.Diff.UpdatedIDs)

	snap, err := svc.Snapshot(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "v2", snap["s1"].Text)
	assert.Equal(t, "alice", snap["s1"].CreatedBy, "updates keep the original creator")

	res, err = svc.CompileAndApply(ctx, "b1", "bob", "", []engine.Preview{
		{Name: engine.ToolDeleteObject, Input: map[string]any{"objectId": "s1"}},
	})
	require.NoError(t, err)
	require.True(t, res.OK)

	snap, err = svc.Snapshot(ctx, "b1")
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestBoardService_UndoPopsLatestTransaction(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CompileAndApply(ctx, "b1", "alice", "", []engine.Preview{
		{Name: engine.ToolCreateStickyNote, Input: map[string]any{
			"id": "s1", "x": 0.0, "y": 0.0, "text": "keep me",
		}},
	})
	require.NoError(t, err)

	_, err = svc.CompileAndApply(ctx, "b1", "alice", "", []engine.Preview{
		{Name: engine.ToolChangeColor, Input: map[string]any{"objectId": "s1", "color": "#10B981"}},
	})
	require.NoError(t, err)

	res, err := svc.Undo(ctx, "b1", "alice")
	require.NoError(t, err)
	require.True(t, res.OK)

	snap, err := svc.Snapshot(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "#FDE68A", snap["s1"].Color, "undo restores the pre-change color")

	txs, err := svc.History(ctx, "b1", 10)
	require.NoError(t, err)
	assert.Len(t, txs, 1, "the undone transaction is removed from the log")

	// A second undo removes the creation itself.
	res, err = svc.Undo(ctx, "b1", "alice")
	require.NoError(t, err)
	require.True(t, res.OK)

	snap, err = svc.Snapshot(ctx, "b1")
	require.NoError(t, err)
	assert.Empty(t, snap)

	_, err = svc.Undo(ctx, "b1", "alice")
	assert.ErrorIs(t, err, store.ErrNoTransactions)
}

func TestBoardService_HistoryNewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, text := range []string{"one", "two", "three"} {
		_, err := svc.CompileAndApply(ctx, "b1", "alice", text, []engine.Preview{
			{Name: engine.ToolCreateStickyNote, Input: map[string]any{
				"id": "s-" + text, "x": 0.0, "y": 0.0, "text": text,
			}},
		})
		require.NoError(t, err)
	}

	txs, err := svc.History(ctx, "b1", 2)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	require.Len(t, txs[0].Actions, 1)
	assert.Equal(t, "s-three", txs[0].Actions[0].Object.ID)
	assert.Equal(t, "s-two", txs[1].Actions[0].Object.ID)
}

func TestBoardService_BoardsAreIsolated(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CompileAndApply(ctx, "b1", "alice", "", []engine.Preview{
		{Name: engine.ToolCreateStickyNote, Input: map[string]any{"id": "s1", "x": 0.0, "y": 0.0}},
	})
	require.NoError(t, err)

	other, err := svc.Snapshot(ctx, "b2")
	require.NoError(t, err)
	assert.Empty(t, other)

	_, err = svc.Undo(ctx, "b2", "alice")
	assert.ErrorIs(t, err, store.ErrNoTransactions)
}

func TestBoardService_ConnectorPersistsGeometry(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res, err := svc.CompileAndApply(ctx, "b1", "alice", "", []engine.Preview{
		{Name: engine.ToolCreateStickyNote, Input: map[string]any{"id": "a", "x": 0.0, "y": 0.0}},
		{Name: engine.ToolCreateStickyNote, Input: map[string]any{"id": "b", "x": 400.0, "y": 0.0}},
		{Name: engine.ToolCreateConnector, Input: map[string]any{"fromId": "a", "toId": "b"}},
	})
	require.NoError(t, err)
	require.True(t, res.OK)

	snap, err := svc.Snapshot(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, snap, 3)

	var conn board.Object
	found := false
	for _, o := range snap {
		if o.Type == board.TypeConnector {
			conn, found = o, true
		}
	}
	require.True(t, found)
	assert.Equal(t, "a", conn.FromID)
	assert.Equal(t, "b", conn.ToID)
	require.GreaterOrEqual(t, len(conn.Points), 4)
	// Horizontal layout: starts at a's right edge, ends at b's left edge.
	assert.InDelta(t, 160.0, conn.Points[0], 1e-9)
	assert.InDelta(t, 400.0, conn.Points[len(conn.Points)-2], 1e-9)
}

func TestBoardService_PersistFailureRollsBackEverything(t *testing.T) {
	database := testutil.NewTestDB(t)
	// The third write inside the persistence transaction is the
	// transaction-log append; failing there must also undo the object
	// upserts that preceded it.
	svc := store.NewBoardServiceWith(
		&testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: errors.New("simulated write failure")},
		store.NewSQLiteBoardRepo(database),
		store.NewSQLiteTransactionRepo(database),
		nil,
	)
	ctx := context.Background()

	_, err := svc.CompileAndApply(ctx, "b1", "alice", "", []engine.Preview{
		{Name: engine.ToolCreateStickyNote, Input: map[string]any{"id": "s1", "x": 0.0, "y": 0.0}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated write failure")

	snap, err := svc.Snapshot(ctx, "b1")
	require.NoError(t, err)
	assert.Empty(t, snap, "the object upsert must not survive the failed append")

	history, err := svc.History(ctx, "b1", 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}
