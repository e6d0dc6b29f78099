// Package router resolves connector endpoint anchors into concrete path
// coordinates. The rest of the system depends only on the Resolver
// contract: an even-length list of at least four numbers whose first and
// last coordinate pairs equal the resolved start and end anchor points.
package router

import (
	"math"

	"github.com/evanharte/pinboard/internal/board"
)

// Request describes one connector resolution. From and To are optional;
// an absent endpoint keeps the corresponding literal coordinates from
// Fallback (the connector's current points).
type Request struct {
	From        *board.Object
	To          *board.Object
	FromAnchorX float64
	FromAnchorY float64
	ToAnchorX   float64
	ToAnchorY   float64

	ConnectorType board.ConnectorType
	PathControlX  *float64
	PathControlY  *float64
	CurveOffset   float64

	// Obstacles are bounding boxes a bent route should clear.
	Obstacles []board.Rect

	// Fallback holds the connector's existing points; its first and last
	// pairs anchor unattached ends.
	Fallback []float64
}

// Resolver computes concrete connector path coordinates.
type Resolver interface {
	Resolve(req Request) []float64
}

// Engine is the default Resolver covering straight, bent, and curved
// connector types.
type Engine struct{}

// New returns the default routing engine.
func New() *Engine { return &Engine{} }

// bentClearance is how far a bent route detours past an obstacle edge.
const bentClearance = 16.0

// curveSegments is the sampling resolution for curved connectors.
const curveSegments = 8

func (e *Engine) Resolve(req Request) []float64 {
	sx, sy := e.endpoint(req.From, req.FromAnchorX, req.FromAnchorY, req.Fallback, true)
	ex, ey := e.endpoint(req.To, req.ToAnchorX, req.ToAnchorY, req.Fallback, false)

	switch req.ConnectorType {
	case board.ConnectorBent:
		return e.bent(sx, sy, ex, ey, req)
	case board.ConnectorCurved:
		return e.curved(sx, sy, ex, ey, req)
	default:
		return []float64{sx, sy, ex, ey}
	}
}

func (e *Engine) endpoint(obj *board.Object, ax, ay float64, fallback []float64, start bool) (float64, float64) {
	if obj != nil {
		return board.AnchorPoint(*obj, ax, ay)
	}
	if len(fallback) >= 4 {
		if start {
			return fallback[0], fallback[1]
		}
		return fallback[len(fallback)-2], fallback[len(fallback)-1]
	}
	if start {
		return 0, 0
	}
	return 140, 0
}

// bent builds an orthogonal route: start, two elbow points on a vertical
// rail, end. The rail sits at the path control point when one is given,
// otherwise at the horizontal midpoint, shifted sideways when an obstacle
// straddles it.
func (e *Engine) bent(sx, sy, ex, ey float64, req Request) []float64 {
	railX := (sx + ex) / 2
	if req.PathControlX != nil {
		railX = *req.PathControlX
	}
	railX = e.clearRail(railX, sy, ey, req.Obstacles)

	if sy == ey {
		// Already a straight horizontal run.
		return []float64{sx, sy, ex, ey}
	}
	return []float64{sx, sy, railX, sy, railX, ey, ex, ey}
}

// clearRail nudges a vertical rail out of any obstacle it would cross.
func (e *Engine) clearRail(railX, sy, ey float64, obstacles []board.Rect) float64 {
	lo, hi := sy, ey
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, ob := range obstacles {
		if railX < ob.X || railX > ob.X+ob.W {
			continue
		}
		if hi < ob.Y || lo > ob.Y+ob.H {
			continue
		}
		// Detour around the nearer vertical edge.
		if railX-ob.X < ob.X+ob.W-railX {
			railX = ob.X - bentClearance
		} else {
			railX = ob.X + ob.W + bentClearance
		}
	}
	return railX
}

// curved samples a quadratic bezier through the control point (or the
// midpoint displaced along the perpendicular by CurveOffset) into a
// polyline. Endpoints are exact.
func (e *Engine) curved(sx, sy, ex, ey float64, req Request) []float64 {
	cx, cy := (sx+ex)/2, (sy+ey)/2
	if req.PathControlX != nil && req.PathControlY != nil {
		cx, cy = *req.PathControlX, *req.PathControlY
	} else if req.CurveOffset != 0 {
		dx, dy := ex-sx, ey-sy
		length := math.Hypot(dx, dy)
		if length > 0 {
			cx += -dy / length * req.CurveOffset
			cy += dx / length * req.CurveOffset
		}
	}

	pts := make([]float64, 0, (curveSegments+1)*2)
	for i := 0; i <= curveSegments; i++ {
		t := float64(i) / curveSegments
		mt := 1 - t
		x := mt*mt*sx + 2*mt*t*cx + t*t*ex
		y := mt*mt*sy + 2*mt*t*cy + t*t*ey
		pts = append(pts, x, y)
	}
	// Pin the endpoints against floating point drift.
	pts[0], pts[1] = sx, sy
	pts[len(pts)-2], pts[len(pts)-1] = ex, ey
	return pts
}
