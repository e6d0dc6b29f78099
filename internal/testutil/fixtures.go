package testutil

import (
	"github.com/evanharte/pinboard/internal/board"
)

// MustObject builds an object through the factory and panics on error.
// Fixtures only pass known-valid types.
func MustObject(t board.ObjectType, ov board.Overrides) board.Object {
	o, err := board.New(t, ov)
	if err != nil {
		panic(err)
	}
	return o
}

// NewSticky creates a sticky note fixture at the given position.
func NewSticky(id, text string, x, y float64) board.Object {
	return MustObject(board.TypeSticky, board.Overrides{
		ID:   board.Str(id),
		X:    board.Num(x),
		Y:    board.Num(y),
		Text: board.Str(text),
	})
}

// NewRect creates a rectangle fixture at the given position.
func NewRect(id string, x, y float64) board.Object {
	return MustObject(board.TypeRect, board.Overrides{
		ID: board.Str(id),
		X:  board.Num(x),
		Y:  board.Num(y),
	})
}

// NewFrame creates a frame fixture at the given position.
func NewFrame(id, title string, x, y float64) board.Object {
	return MustObject(board.TypeFrame, board.Overrides{
		ID:    board.Str(id),
		X:     board.Num(x),
		Y:     board.Num(y),
		Title: board.Str(title),
	})
}

// NewConnector creates a connector fixture between two object IDs.
func NewConnector(id, fromID, toID string) board.Object {
	return MustObject(board.TypeConnector, board.Overrides{
		ID:     board.Str(id),
		FromID: board.Str(fromID),
		ToID:   board.Str(toID),
	})
}

// NewRecord assembles a snapshot from fixture objects.
func NewRecord(objects ...board.Object) board.Record {
	rec := board.Record{}
	for _, o := range objects {
		rec[o.ID] = o
	}
	return rec
}
