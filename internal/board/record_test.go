package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_CloneIsDeep(t *testing.T) {
	line, err := New(TypeLine, Overrides{ID: Str("l1"), Points: []float64{0, 0, 10, 10}})
	require.NoError(t, err)
	rec := Record{"l1": line}

	clone := rec.Clone()
	clone["l1"].Points[2] = 999

	assert.Equal(t, 10.0, rec["l1"].Points[2], "mutating the clone must not touch the original")
}

func TestRecord_MaxZIndex(t *testing.T) {
	assert.Equal(t, 0, Record{}.MaxZIndex())

	a, err := New(TypeSticky, Overrides{ID: Str("a"), ZIndex: Int(3)})
	require.NoError(t, err)
	b, err := New(TypeSticky, Overrides{ID: Str("b"), ZIndex: Int(7)})
	require.NoError(t, err)

	rec := Record{"a": a, "b": b}
	assert.Equal(t, 7, rec.MaxZIndex())
}

func TestEqualValue_IgnoresUpdatedAt(t *testing.T) {
	a, err := New(TypeSticky, Overrides{ID: Str("s1"), Text: Str("hi")})
	require.NoError(t, err)

	b := a.Clone()
	b.UpdatedAt = time.Now().Add(time.Hour)

	assert.True(t, EqualValue(a, b))
}

func TestEqualValue_DetectsFieldChange(t *testing.T) {
	a, err := New(TypeSticky, Overrides{ID: Str("s1"), Text: Str("hi")})
	require.NoError(t, err)

	b := a.Clone()
	b.Text = "bye"

	assert.False(t, EqualValue(a, b))
}
