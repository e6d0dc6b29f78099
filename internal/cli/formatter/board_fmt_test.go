package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/evanharte/pinboard/internal/board"
	"github.com/evanharte/pinboard/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBoard_Empty(t *testing.T) {
	out := FormatBoard("b1", board.Record{})
	assert.Contains(t, out, "B1")
	assert.Contains(t, out, "empty board")
}

func TestFormatBoard_ListsObjectsInZOrder(t *testing.T) {
	top, err := board.New(board.TypeSticky, board.Overrides{
		ID: board.Str("top"), Text: board.Str("upper"), ZIndex: board.Int(2),
	})
	require.NoError(t, err)
	bottom, err := board.New(board.TypeRect, board.Overrides{
		ID: board.Str("bottom"), ZIndex: board.Int(1),
	})
	require.NoError(t, err)

	out := FormatBoard("b1", board.Record{"top": top, "bottom": bottom})

	assert.Contains(t, out, "top")
	assert.Contains(t, out, "upper")
	assert.Less(t, strings.Index(out, "bottom"), strings.Index(out, "top"), "lower z renders first")
}

func TestFormatResult_Success(t *testing.T) {
	out := FormatResult(engine.Result{
		OK:          true,
		Transaction: &engine.Transaction{TxID: "tx-1"},
		Diff: engine.Diff{
			CreatedIDs: []string{"a"},
			UpdatedIDs: []string{},
			DeletedIDs: []string{"b", "c"},
		},
	})

	assert.Contains(t, out, "applied")
	assert.Contains(t, out, "tx-1")
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b, c")
}

func TestFormatResult_Failure(t *testing.T) {
	out := FormatResult(engine.Result{
		OK:                false,
		Err:               errors.New("object not found: ghost"),
		FailedActionIndex: 2,
	})

	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "action 2")
	assert.Contains(t, out, "ghost")
}

func TestFormatHistory_Empty(t *testing.T) {
	out := FormatHistory(nil)
	assert.Contains(t, out, "no transactions")
}
