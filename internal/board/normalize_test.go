package board

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLoaded_RejectsNonObjects(t *testing.T) {
	assert.Nil(t, NormalizeLoaded(nil, "u1"))
	assert.Nil(t, NormalizeLoaded("sticky", "u1"))
	assert.Nil(t, NormalizeLoaded(42, "u1"))
	assert.Nil(t, NormalizeLoaded([]any{"sticky"}, "u1"))
}

func TestNormalizeLoaded_RejectsUnknownType(t *testing.T) {
	assert.Nil(t, NormalizeLoaded(map[string]any{"type": "hexagon"}, "u1"))
	assert.Nil(t, NormalizeLoaded(map[string]any{"id": "o1"}, "u1"))
}

func TestNormalizeLoaded_FillsDefaults(t *testing.T) {
	o := NormalizeLoaded(map[string]any{
		"type": "sticky",
		"id":   "s1",
		"x":    float64(10),
	}, "loader")
	require.NotNil(t, o)

	assert.Equal(t, "s1", o.ID)
	assert.Equal(t, 10.0, o.X)
	assert.Equal(t, 160.0, o.Width)
	assert.Equal(t, "loader", o.CreatedBy, "missing creator falls back to the loading user")
}

func TestNormalizeLoaded_KeepsExistingCreator(t *testing.T) {
	o := NormalizeLoaded(map[string]any{
		"type":      "rect",
		"createdBy": "alice",
	}, "loader")
	require.NotNil(t, o)
	assert.Equal(t, "alice", o.CreatedBy)
}

func TestNormalizeLoaded_MistypedFieldsIgnored(t *testing.T) {
	o := NormalizeLoaded(map[string]any{
		"type":  "sticky",
		"x":     "not a number",
		"width": true,
	}, "u1")
	require.NotNil(t, o)
	assert.Equal(t, 0.0, o.X)
	assert.Equal(t, 160.0, o.Width)
}

func TestNormalizeLoaded_JSONRoundTrip(t *testing.T) {
	orig, err := New(TypeConnector, Overrides{
		ID:        Str("c1"),
		FromID:    Str("a"),
		ToID:      Str("b"),
		Points:    []float64{0, 0, 100, 100},
		CreatedBy: Str("u1"),
	})
	require.NoError(t, err)

	data, err := json.Marshal(Sanitize(orig))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	loaded := NormalizeLoaded(raw, "u1")
	require.NotNil(t, loaded)
	assert.True(t, EqualValue(orig, *loaded), "round-tripped connector should be value-equal")
}

func TestNormalizeLoaded_PointsFromJSONArray(t *testing.T) {
	o := NormalizeLoaded(map[string]any{
		"type":   "line",
		"points": []any{float64(0), float64(0), float64(50), float64(60)},
	}, "u1")
	require.NotNil(t, o)
	assert.Equal(t, []float64{0, 0, 50, 60}, o.Points)
}
