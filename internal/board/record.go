package board

import (
	"reflect"
	"time"
)

// Record maps object id to object. Key order is irrelevant; paint order
// comes from ZIndex.
type Record map[string]Object

// Clone returns a deep copy of the record. The compiler and executor work
// exclusively on clones so a caller's snapshot is never mutated.
func (r Record) Clone() Record {
	c := make(Record, len(r))
	for id, o := range r {
		c[id] = o.Clone()
	}
	return c
}

// MaxZIndex returns the highest ZIndex in the record, or 0 when empty.
func (r Record) MaxZIndex() int {
	max := 0
	for _, o := range r {
		if o.ZIndex > max {
			max = o.ZIndex
		}
	}
	return max
}

// EqualValue reports whether two objects are equal by sanitized value,
// ignoring the volatile UpdatedAt timestamp. This is the comparison basis
// for structural diffs.
func EqualValue(a, b Object) bool {
	sa := Sanitize(a)
	sb := Sanitize(b)
	sa.UpdatedAt = time.Time{}
	sb.UpdatedAt = time.Time{}
	return reflect.DeepEqual(sa, sb)
}
