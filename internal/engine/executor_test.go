package engine

import (
	"testing"

	"github.com/evanharte/pinboard/internal/board"
	"github.com/evanharte/pinboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executePlan(t *testing.T, rec board.Record, actions ...Action) Result {
	t.Helper()
	return Execute(ExecuteInput{
		Plan:           &Plan{PlanID: "p1", Actions: actions},
		CurrentObjects: rec,
		ActorUserID:    "actor-1",
	})
}

func TestExecute_CreateStampsActor(t *testing.T) {
	obj := testutil.NewSticky("s1", "hello", 0, 0)
	res := executePlan(t, board.Record{}, Action{Kind: ActionCreate, Object: &obj})

	require.True(t, res.OK)
	assert.Equal(t, -1, res.FailedActionIndex)
	created := res.NextObjects["s1"]
	assert.Equal(t, "actor-1", created.CreatedBy)
	assert.Equal(t, []string{"s1"}, res.Diff.CreatedIDs)
}

func TestExecute_CreatePreservesExistingCreator(t *testing.T) {
	obj := testutil.NewSticky("s1", "hello", 0, 0)
	obj.CreatedBy = "original-author"

	res := executePlan(t, board.Record{}, Action{Kind: ActionCreate, Object: &obj})

	require.True(t, res.OK)
	assert.Equal(t, "original-author", res.NextObjects["s1"].CreatedBy)
}

func TestExecute_DuplicateIDFails(t *testing.T) {
	rec := testutil.NewRecord(testutil.NewSticky("s1", "", 0, 0))
	obj := testutil.NewSticky("s1", "again", 0, 0)

	res := executePlan(t, rec, Action{Kind: ActionCreate, Object: &obj})

	require.False(t, res.OK)
	assert.ErrorIs(t, res.Err, ErrDuplicateID)
	assert.Equal(t, 0, res.FailedActionIndex)
	assert.Nil(t, res.NextObjects)
}

func TestExecute_UpdateNotFoundFails(t *testing.T) {
	patch := board.Overrides{X: board.Num(10)}
	res := executePlan(t, board.Record{}, Action{Kind: ActionUpdate, ObjectID: "ghost", Patch: &patch})

	require.False(t, res.OK)
	assert.ErrorIs(t, res.Err, ErrNotFound)
}

func TestExecute_AtomicityOnMidPlanFailure(t *testing.T) {
	rec := testutil.NewRecord(testutil.NewSticky("s1", "keep", 0, 0))

	a := testutil.NewSticky("s2", "new", 0, 0)
	patch := board.Overrides{X: board.Num(99)}
	res := executePlan(t, rec,
		Action{Kind: ActionCreate, Object: &a},
		Action{Kind: ActionUpdate, ObjectID: "missing", Patch: &patch},
	)

	require.False(t, res.OK)
	assert.Equal(t, 1, res.FailedActionIndex)
	assert.Nil(t, res.NextObjects, "a failed plan yields no next snapshot")
	// The input snapshot is untouched even though action 0 succeeded.
	require.Len(t, rec, 1)
	assert.Equal(t, "keep", rec["s1"].Text)
}

func TestExecute_CallerSnapshotNeverMutated(t *testing.T) {
	rec := testutil.NewRecord(testutil.NewSticky("s1", "before", 0, 0))
	patch := board.Overrides{Text: board.Str("after")}

	res := executePlan(t, rec, Action{Kind: ActionUpdate, ObjectID: "s1", Patch: &patch})

	require.True(t, res.OK)
	assert.Equal(t, "before", rec["s1"].Text)
	assert.Equal(t, "after", res.NextObjects["s1"].Text)
}

func TestExecute_DiffExact(t *testing.T) {
	rec := testutil.NewRecord(
		testutil.NewSticky("keep", "same", 0, 0),
		testutil.NewSticky("upd", "old", 0, 0),
		testutil.NewSticky("del", "gone", 0, 0),
	)

	obj := testutil.NewSticky("new", "fresh", 0, 0)
	patch := board.Overrides{Text: board.Str("new text")}
	res := executePlan(t, rec,
		Action{Kind: ActionCreate, Object: &obj},
		Action{Kind: ActionUpdate, ObjectID: "upd", Patch: &patch},
		Action{Kind: ActionDelete, ObjectID: "del"},
	)

	require.True(t, res.OK)
	assert.Equal(t, []string{"new"}, res.Diff.CreatedIDs)
	assert.Equal(t, []string{"upd"}, res.Diff.UpdatedIDs)
	assert.Equal(t, []string{"del"}, res.Diff.DeletedIDs)
}

func TestExecute_NoOpUpdateNotInDiff(t *testing.T) {
	sticky := testutil.NewSticky("s1", "same", 0, 0)
	rec := testutil.NewRecord(sticky)

	patch := board.Overrides{Text: board.Str("same")}
	res := executePlan(t, rec, Action{Kind: ActionUpdate, ObjectID: "s1", Patch: &patch})

	require.True(t, res.OK)
	assert.Empty(t, res.Diff.UpdatedIDs, "an update that changes nothing observable is not a diff entry")
}

func TestExecute_UndoRoundTrip(t *testing.T) {
	s1 := testutil.NewSticky("s1", "original", 10, 10)
	s1.CreatedBy = "seed"
	r1 := testutil.NewRect("r1", 200, 200)
	r1.CreatedBy = "seed"
	rec := testutil.NewRecord(s1, r1)

	obj := testutil.NewFrame("f1", "New Frame", 500, 500)
	patch := board.Overrides{Text: board.Str("edited"), Color: board.Str("#10B981")}
	res := executePlan(t, rec,
		Action{Kind: ActionCreate, Object: &obj},
		Action{Kind: ActionUpdate, ObjectID: "s1", Patch: &patch},
		Action{Kind: ActionDelete, ObjectID: "r1"},
	)
	require.True(t, res.OK)
	require.NotNil(t, res.Transaction)

	undo := Execute(ExecuteInput{
		Plan:           res.Transaction.InversePlan(),
		CurrentObjects: res.NextObjects,
		ActorUserID:    "actor-2",
	})
	require.True(t, undo.OK)

	require.Len(t, undo.NextObjects, len(rec))
	for id, before := range rec {
		after, ok := undo.NextObjects[id]
		require.True(t, ok, "object %s should be restored", id)
		assert.True(t, board.EqualValue(before, after), "object %s should round-trip exactly", id)
	}
}

func TestExecute_UndoRestoresDeletedCreator(t *testing.T) {
	sticky := testutil.NewSticky("s1", "mine", 0, 0)
	sticky.CreatedBy = "alice"
	rec := testutil.NewRecord(sticky)

	res := executePlan(t, rec, Action{Kind: ActionDelete, ObjectID: "s1"})
	require.True(t, res.OK)

	undo := Execute(ExecuteInput{
		Plan:           res.Transaction.InversePlan(),
		CurrentObjects: res.NextObjects,
		ActorUserID:    "bob",
	})
	require.True(t, undo.OK)
	assert.Equal(t, "alice", undo.NextObjects["s1"].CreatedBy,
		"undo must restore the original creator, not stamp the undoing actor")
}

func TestExecute_InverseOrderIsLIFO(t *testing.T) {
	a := testutil.NewSticky("a", "", 0, 0)
	b := testutil.NewSticky("b", "", 0, 0)
	res := executePlan(t, board.Record{},
		Action{Kind: ActionCreate, Object: &a},
		Action{Kind: ActionCreate, Object: &b},
	)
	require.True(t, res.OK)

	require.Len(t, res.Transaction.InverseActions, 2)
	assert.Equal(t, "b", res.Transaction.InverseActions[0].ObjectID)
	assert.Equal(t, "a", res.Transaction.InverseActions[1].ObjectID)
}

func TestExecute_TextPatchOnFrameBecomesTitle(t *testing.T) {
	rec := testutil.NewRecord(testutil.NewFrame("f1", "Old Title", 0, 0))

	patch := board.Overrides{Text: board.Str("New Title")}
	res := executePlan(t, rec, Action{Kind: ActionUpdate, ObjectID: "f1", Patch: &patch})

	require.True(t, res.OK)
	frame := res.NextObjects["f1"]
	assert.Equal(t, "New Title", frame.Title)
	assert.Empty(t, frame.Text)
}

func TestExecute_TextPatchOnShapeRejected(t *testing.T) {
	rec := testutil.NewRecord(testutil.NewRect("r1", 0, 0))

	patch := board.Overrides{Text: board.Str("nope")}
	res := executePlan(t, rec, Action{Kind: ActionUpdate, ObjectID: "r1", Patch: &patch})

	require.False(t, res.OK)
	assert.ErrorIs(t, res.Err, ErrInvalidPatch)
}

func TestExecute_ResizeLineScalesPoints(t *testing.T) {
	line := testutil.MustObject(board.TypeLine, board.Overrides{
		ID:     board.Str("l1"),
		X:      board.Num(10),
		Y:      board.Num(10),
		Points: []float64{0, 0, 100, 50},
	})
	rec := testutil.NewRecord(line)

	patch := board.Overrides{Width: board.Num(200), Height: board.Num(100)}
	res := executePlan(t, rec, Action{Kind: ActionUpdate, ObjectID: "l1", Patch: &patch})

	require.True(t, res.OK)
	resized := res.NextObjects["l1"]
	assert.Equal(t, []float64{0, 0, 200, 100}, resized.Points)
	assert.Equal(t, 200.0, resized.Width)
	assert.Equal(t, 100.0, resized.Height)
}

func TestExecute_MoveDetachedConnectorTranslatesPoints(t *testing.T) {
	conn := testutil.MustObject(board.TypeConnector, board.Overrides{
		ID:     board.Str("c1"),
		Points: []float64{10, 20, 110, 70},
	})
	rec := testutil.NewRecord(conn)

	patch := board.Overrides{X: board.Num(60), Y: board.Num(40)}
	res := executePlan(t, rec, Action{Kind: ActionUpdate, ObjectID: "c1", Patch: &patch})

	require.True(t, res.OK)
	moved := res.NextObjects["c1"]
	assert.Equal(t, []float64{60, 40, 160, 90}, moved.Points)
	assert.Equal(t, 60.0, moved.X)
	assert.Equal(t, 40.0, moved.Y)
	assert.Contains(t, res.Diff.UpdatedIDs, "c1")
}

func TestExecute_MoveEndpointRetractsConnector(t *testing.T) {
	rec := testutil.NewRecord(
		testutil.NewSticky("a", "", 0, 0),
		testutil.NewSticky("b", "", 400, 0),
		testutil.NewConnector("c", "a", "b"),
	)
	// Settle connector geometry once so we can observe the change.
	settle := Execute(ExecuteInput{
		Plan:           &Plan{PlanID: "settle", Actions: nil},
		CurrentObjects: rec,
	})
	require.True(t, settle.OK)

	patch := board.Overrides{X: board.Num(0), Y: board.Num(800)}
	res := executePlan(t, rec, Action{Kind: ActionUpdate, ObjectID: "b", Patch: &patch})
	require.True(t, res.OK)

	conn := res.NextObjects["c"]
	require.GreaterOrEqual(t, len(conn.Points), 4)
	endY := conn.Points[len(conn.Points)-1]
	assert.InDelta(t, 860.0, endY, 1.0, "connector end should follow the moved endpoint's center")
}

func TestExecute_DeleteEndpointKeepsConnectorPoints(t *testing.T) {
	rec := testutil.NewRecord(
		testutil.NewSticky("a", "", 0, 0),
		testutil.NewSticky("b", "", 400, 0),
		testutil.NewConnector("c", "a", "b"),
	)

	res := executePlan(t, rec, Action{Kind: ActionDelete, ObjectID: "b"})
	require.True(t, res.OK)

	conn, ok := res.NextObjects["c"]
	require.True(t, ok, "the connector itself survives endpoint deletion")
	assert.Equal(t, "b", conn.ToID, "attachment id is kept for potential undo")
	require.GreaterOrEqual(t, len(conn.Points), 4)
}

func TestExecute_EmptyPlan(t *testing.T) {
	rec := testutil.NewRecord(testutil.NewSticky("s1", "", 0, 0))
	res := executePlan(t, rec)

	require.True(t, res.OK)
	assert.Empty(t, res.Diff.CreatedIDs)
	assert.Empty(t, res.Diff.UpdatedIDs)
	assert.Empty(t, res.Diff.DeletedIDs)
	assert.Len(t, res.NextObjects, 1)
}
