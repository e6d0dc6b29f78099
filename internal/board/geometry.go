package board

import "math"

// Rect is an axis-aligned bounding box in board coordinates.
type Rect struct {
	X, Y, W, H float64
}

// BoundsOf computes the object's bounding box. Line and connector bounds
// derive from their points (line points are local to x/y, connector points
// are board coordinates); every other variant uses x/y/width/height.
func BoundsOf(o Object) Rect {
	switch o.Type {
	case TypeLine:
		minX, minY, w, h := pointBounds(o.Points)
		return Rect{X: o.X + minX, Y: o.Y + minY, W: w, H: h}
	case TypeConnector:
		minX, minY, w, h := pointBounds(o.Points)
		return Rect{X: minX, Y: minY, W: w, H: h}
	default:
		return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
	}
}

// CenterOf returns the center of the object's bounding box.
func CenterOf(o Object) (float64, float64) {
	b := BoundsOf(o)
	return b.X + b.W/2, b.Y + b.H/2
}

// AnchorPoint resolves a normalized (0-1, 0-1) anchor fraction within the
// object's bounding box to board coordinates.
func AnchorPoint(o Object, ax, ay float64) (float64, float64) {
	b := BoundsOf(o)
	return b.X + clamp01(ax)*b.W, b.Y + clamp01(ay)*b.H
}

// AnchorCandidates returns the eight candidate attachment points of an
// object: side midpoints and corners for rectangular variants, or eight
// ellipse-parametrized points for circles.
func AnchorCandidates(o Object) [][2]float64 {
	b := BoundsOf(o)
	if o.Type == TypeCircle {
		cx, cy := b.X+b.W/2, b.Y+b.H/2
		rx, ry := b.W/2, b.H/2
		pts := make([][2]float64, 0, 8)
		for i := 0; i < 8; i++ {
			theta := float64(i) * math.Pi / 4
			pts = append(pts, [2]float64{cx + rx*math.Cos(theta), cy + ry*math.Sin(theta)})
		}
		return pts
	}
	return [][2]float64{
		{b.X + b.W/2, b.Y},         // top
		{b.X + b.W, b.Y + b.H/2},   // right
		{b.X + b.W/2, b.Y + b.H},   // bottom
		{b.X, b.Y + b.H/2},         // left
		{b.X, b.Y},                 // top-left
		{b.X + b.W, b.Y},           // top-right
		{b.X + b.W, b.Y + b.H},     // bottom-right
		{b.X, b.Y + b.H},           // bottom-left
	}
}

// ScalePointsTo rescales a flat point list so its bounding box spans the
// requested width and height, preserving the first point exactly. A
// degenerate axis (zero span) is left untouched.
func ScalePointsTo(pts []float64, width, height float64) []float64 {
	if len(pts) < 4 {
		return append([]float64(nil), pts...)
	}
	_, _, w, h := pointBounds(pts)
	sx, sy := 1.0, 1.0
	if w > 0 {
		sx = width / w
	}
	if h > 0 {
		sy = height / h
	}
	ox, oy := pts[0], pts[1]
	out := make([]float64, len(pts))
	for i := 0; i+1 < len(pts); i += 2 {
		out[i] = ox + (pts[i]-ox)*sx
		out[i+1] = oy + (pts[i+1]-oy)*sy
	}
	return out
}

// ProjectToPerimeter returns the point on the object's perimeter nearest to
// the query point. Circles use the closed-form radial projection; the
// rectangular variants pick the dominant edge by comparing normalized
// horizontal and vertical offsets from the center.
func ProjectToPerimeter(o Object, qx, qy float64) (float64, float64) {
	b := BoundsOf(o)
	cx, cy := b.X+b.W/2, b.Y+b.H/2

	if o.Type == TypeCircle {
		r := b.W / 2
		dx, dy := qx-cx, qy-cy
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			return cx + r, cy
		}
		return cx + dx/dist*r, cy + dy/dist*r
	}

	if b.W == 0 || b.H == 0 {
		return cx, cy
	}
	nx := (qx - cx) / (b.W / 2)
	ny := (qy - cy) / (b.H / 2)
	if math.Abs(nx) >= math.Abs(ny) {
		x := b.X
		if nx > 0 {
			x = b.X + b.W
		}
		return x, clampRange(qy, b.Y, b.Y+b.H)
	}
	y := b.Y
	if ny > 0 {
		y = b.Y + b.H
	}
	return clampRange(qx, b.X, b.X+b.W), y
}
