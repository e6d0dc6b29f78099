package engine

import (
	"sort"

	"github.com/evanharte/pinboard/internal/board"
)

// computeDiff compares two snapshots by sanitized value and returns the
// exact symmetric difference, sorted for deterministic output. Reference
// identity is irrelevant: an update that changes nothing observable does
// not appear.
func computeDiff(before, after board.Record) Diff {
	d := Diff{
		CreatedIDs: []string{},
		UpdatedIDs: []string{},
		DeletedIDs: []string{},
	}
	for id, obj := range after {
		prev, ok := before[id]
		if !ok {
			d.CreatedIDs = append(d.CreatedIDs, id)
			continue
		}
		if !board.EqualValue(prev, obj) {
			d.UpdatedIDs = append(d.UpdatedIDs, id)
		}
	}
	for id := range before {
		if _, ok := after[id]; !ok {
			d.DeletedIDs = append(d.DeletedIDs, id)
		}
	}
	sort.Strings(d.CreatedIDs)
	sort.Strings(d.UpdatedIDs)
	sort.Strings(d.DeletedIDs)
	return d
}
