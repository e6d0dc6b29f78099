package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/evanharte/pinboard/internal/board"
	"github.com/evanharte/pinboard/internal/engine"
)

// FormatBoard renders a board snapshot as a z-ordered object listing.
func FormatBoard(boardID string, rec board.Record) string {
	var b strings.Builder
	b.WriteString(Header("board " + boardID))
	b.WriteString("\n")

	if len(rec) == 0 {
		b.WriteString(Dim("(empty board)"))
		b.WriteString("\n")
		return b.String()
	}

	objects := make([]board.Object, 0, len(rec))
	for _, o := range rec {
		objects = append(objects, o)
	}
	sort.Slice(objects, func(i, j int) bool {
		if objects[i].ZIndex != objects[j].ZIndex {
			return objects[i].ZIndex < objects[j].ZIndex
		}
		return objects[i].ID < objects[j].ID
	})

	for _, o := range objects {
		tag := TypeStyle(o.Type).Render(fmt.Sprintf("%-9s", o.Type))
		b.WriteString(fmt.Sprintf("%s %s  %s\n", tag, Bold(o.ID), objectSummary(o)))
	}
	return b.String()
}

func objectSummary(o board.Object) string {
	pos := Dim(fmt.Sprintf("(%.0f,%.0f %.0fx%.0f z%d)", o.X, o.Y, o.Width, o.Height, o.ZIndex))
	switch o.Type {
	case board.TypeSticky, board.TypeText:
		return fmt.Sprintf("%s %q", pos, truncate(o.Text, 40))
	case board.TypeFrame:
		return fmt.Sprintf("%s %q", pos, o.Title)
	case board.TypeConnector:
		return fmt.Sprintf("%s %s -> %s", pos, orDetached(o.FromID), orDetached(o.ToID))
	default:
		return pos
	}
}

func orDetached(id string) string {
	if id == "" {
		return Dim("(detached)")
	}
	return id
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// FormatResult renders an apply/undo outcome: the diff on success, the
// failing action on failure.
func FormatResult(res engine.Result) string {
	var b strings.Builder
	if !res.OK {
		b.WriteString(StyleRed.Render("✗ failed"))
		b.WriteString(fmt.Sprintf(" at action %d: %v\n", res.FailedActionIndex, res.Err))
		return b.String()
	}
	b.WriteString(StyleGreen.Render("✓ applied"))
	if res.Transaction != nil {
		b.WriteString(Dim(" tx " + res.Transaction.TxID))
	}
	b.WriteString("\n")
	writeIDList(&b, StyleGreen.Render("created"), res.Diff.CreatedIDs)
	writeIDList(&b, StyleYellow.Render("updated"), res.Diff.UpdatedIDs)
	writeIDList(&b, StyleRed.Render("deleted"), res.Diff.DeletedIDs)
	return b.String()
}

func writeIDList(b *strings.Builder, label string, ids []string) {
	if len(ids) == 0 {
		return
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", label, strings.Join(ids, ", ")))
}

// FormatHistory renders applied transactions, newest first.
func FormatHistory(txs []*engine.Transaction) string {
	var b strings.Builder
	b.WriteString(Header("history"))
	b.WriteString("\n")
	if len(txs) == 0 {
		b.WriteString(Dim("(no transactions)"))
		b.WriteString("\n")
		return b.String()
	}
	for _, tx := range txs {
		actor := tx.ActorUserID
		if actor == "" {
			actor = "unknown"
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s\n",
			Dim(tx.CreatedAt.Local().Format(time.DateTime)),
			Bold(tx.TxID),
			StyleBlue.Render(actor),
			Dim(fmt.Sprintf("%d action(s)", len(tx.Actions))),
		))
	}
	return b.String()
}
