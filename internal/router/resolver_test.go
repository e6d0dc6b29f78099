package router

import (
	"testing"

	"github.com/evanharte/pinboard/internal/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectAt(t *testing.T, id string, x, y, w, h float64) *board.Object {
	t.Helper()
	o, err := board.New(board.TypeRect, board.Overrides{
		ID:     board.Str(id),
		X:      board.Num(x),
		Y:      board.Num(y),
		Width:  board.Num(w),
		Height: board.Num(h),
	})
	require.NoError(t, err)
	return &o
}

func TestResolve_StraightUsesAnchorPoints(t *testing.T) {
	from := rectAt(t, "a", 0, 0, 100, 100)
	to := rectAt(t, "b", 300, 0, 100, 100)

	pts := New().Resolve(Request{
		From: from, To: to,
		FromAnchorX: 1, FromAnchorY: 0.5,
		ToAnchorX: 0, ToAnchorY: 0.5,
		ConnectorType: board.ConnectorStraight,
	})

	assert.Equal(t, []float64{100, 50, 300, 50}, pts)
}

func TestResolve_EndpointsAlwaysPinned(t *testing.T) {
	from := rectAt(t, "a", 0, 0, 100, 100)
	to := rectAt(t, "b", 200, 300, 100, 100)

	for _, ct := range []board.ConnectorType{board.ConnectorStraight, board.ConnectorBent, board.ConnectorCurved} {
		pts := New().Resolve(Request{
			From: from, To: to,
			FromAnchorX: 0.5, FromAnchorY: 1,
			ToAnchorX: 0.5, ToAnchorY: 0,
			ConnectorType: ct,
		})
		require.GreaterOrEqual(t, len(pts), 4, "type %s", ct)
		require.Zero(t, len(pts)%2, "type %s", ct)
		assert.Equal(t, 50.0, pts[0], "type %s start x", ct)
		assert.Equal(t, 100.0, pts[1], "type %s start y", ct)
		assert.Equal(t, 250.0, pts[len(pts)-2], "type %s end x", ct)
		assert.Equal(t, 300.0, pts[len(pts)-1], "type %s end y", ct)
	}
}

func TestResolve_BentIsOrthogonal(t *testing.T) {
	from := rectAt(t, "a", 0, 0, 100, 100)
	to := rectAt(t, "b", 300, 200, 100, 100)

	pts := New().Resolve(Request{
		From: from, To: to,
		FromAnchorX: 1, FromAnchorY: 0.5,
		ToAnchorX: 0, ToAnchorY: 0.5,
		ConnectorType: board.ConnectorBent,
	})

	require.Len(t, pts, 8)
	// Every segment is axis-aligned.
	for i := 0; i+3 < len(pts); i += 2 {
		dx := pts[i+2] - pts[i]
		dy := pts[i+3] - pts[i+1]
		assert.True(t, dx == 0 || dy == 0, "segment %d should be orthogonal", i/2)
	}
}

func TestResolve_BentRailAvoidsObstacle(t *testing.T) {
	from := rectAt(t, "a", 0, 0, 100, 100)
	to := rectAt(t, "b", 300, 200, 100, 100)
	// Obstacle straddling the midpoint rail at x=200.
	obstacle := board.Rect{X: 180, Y: 0, W: 40, H: 400}

	pts := New().Resolve(Request{
		From: from, To: to,
		FromAnchorX: 1, FromAnchorY: 0.5,
		ToAnchorX: 0, ToAnchorY: 0.5,
		ConnectorType: board.ConnectorBent,
		Obstacles:     []board.Rect{obstacle},
	})

	require.Len(t, pts, 8)
	railX := pts[2]
	assert.True(t, railX < obstacle.X || railX > obstacle.X+obstacle.W,
		"rail at %v should clear obstacle [%v,%v]", railX, obstacle.X, obstacle.X+obstacle.W)
}

func TestResolve_CurvedSamplesPolyline(t *testing.T) {
	from := rectAt(t, "a", 0, 0, 100, 100)
	to := rectAt(t, "b", 300, 0, 100, 100)

	pts := New().Resolve(Request{
		From: from, To: to,
		FromAnchorX: 1, FromAnchorY: 0.5,
		ToAnchorX: 0, ToAnchorY: 0.5,
		ConnectorType: board.ConnectorCurved,
		CurveOffset:   40,
	})

	require.Greater(t, len(pts), 4, "a curve is sampled into more than one segment")
	// The offset bows the midpoint off the straight baseline at y=50.
	midY := pts[len(pts)/2]
	if len(pts)/2%2 == 0 {
		midY = pts[len(pts)/2+1]
	}
	assert.NotEqual(t, 50.0, midY)
}

func TestResolve_DetachedEndsUseFallback(t *testing.T) {
	pts := New().Resolve(Request{
		ConnectorType: board.ConnectorStraight,
		Fallback:      []float64{5, 6, 7, 8},
	})
	assert.Equal(t, []float64{5, 6, 7, 8}, pts)
}

func TestResolve_PartiallyAttached(t *testing.T) {
	to := rectAt(t, "b", 200, 200, 100, 100)

	pts := New().Resolve(Request{
		To:        to,
		ToAnchorX: 0.5, ToAnchorY: 0,
		ConnectorType: board.ConnectorStraight,
		Fallback:      []float64{10, 20, 999, 999},
	})

	assert.Equal(t, []float64{10, 20, 250, 200}, pts)
}
