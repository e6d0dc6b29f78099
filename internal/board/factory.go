package board

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownObjectType is returned by New for a type outside the closed
// seven-variant set.
var ErrUnknownObjectType = errors.New("unknown board object type")

// Variant defaults and minimums. Dimensions are clamped, never rejected.
const (
	stickyDefaultWidth  = 160.0
	stickyDefaultHeight = 120.0
	stickyMinWidth      = 48.0
	stickyMinHeight     = 36.0
	stickyFontSize      = 14.0

	textDefaultWidth  = 200.0
	textDefaultHeight = 40.0
	textMinWidth      = 72.0
	textMinHeight     = 28.0
	textFontSize      = 16.0

	shapeDefaultWidth  = 160.0
	shapeDefaultHeight = 100.0
	circleDefaultSize  = 120.0

	frameDefaultWidth  = 360.0
	frameDefaultHeight = 240.0
	frameMinWidth      = 220.0
	frameMinHeight     = 140.0
	frameDefaultTitle  = "Frame"

	minFontSize    = 10.0
	minStrokeWidth = 1.0
	minSegmentSize = 8.0

	defaultSegmentLength = 140.0
	defaultStrokeWidth   = 2.0
	defaultLabelPosition = 50.0
)

const (
	stickyColor    = "#FDE68A"
	shapeColor     = "#FFFFFF"
	lineColor      = "#1E293B"
	textColor      = "#111827"
	frameColor     = "#F8FAFC"
	connectorColor = "#475569"
	defaultStroke  = "#1E293B"
	frameStroke    = "#94A3B8"
)

// New constructs a board object of the given variant from a partial set of
// overrides. Every required field is filled with a type-specific default,
// dimensions are clamped to the variant's minimum, and computed fields
// (circle squaring, point-derived bounds, anchor presence) are derived.
// The only failure mode is a type outside the closed variant set; all other
// input is coerced, never rejected.
func New(t ObjectType, ov Overrides) (Object, error) {
	if !ValidObjectTypes[t] {
		return Object{}, ErrUnknownObjectType
	}

	o := Object{
		ID:        StrFromPtrWithDefault(uuid.New().String(), ov.ID),
		Type:      t,
		X:         Float64FromPtrWithDefault(0, ov.X),
		Y:         Float64FromPtrWithDefault(0, ov.Y),
		Rotation:  Float64FromPtrWithDefault(0, ov.Rotation),
		ZIndex:    IntFromPtrWithDefault(0, ov.ZIndex),
		CreatedBy: StrFromPtrWithDefault("", ov.CreatedBy),
	}
	if ov.UpdatedAt != nil {
		o.UpdatedAt = *ov.UpdatedAt
	} else {
		o.UpdatedAt = time.Now().UTC()
	}
	if o.ID == "" {
		o.ID = uuid.New().String()
	}

	switch t {
	case TypeSticky:
		o.Color = StrFromPtrWithDefault(stickyColor, ov.Color)
		o.Text = StrFromPtrWithDefault("", ov.Text)
		o.FontSize = atLeast(minFontSize, Float64FromPtrWithDefault(stickyFontSize, ov.FontSize))
		o.Width = atLeast(stickyMinWidth, positiveOr(stickyDefaultWidth, ov.Width))
		o.Height = atLeast(stickyMinHeight, positiveOr(stickyDefaultHeight, ov.Height))

	case TypeText:
		o.Color = StrFromPtrWithDefault(textColor, ov.Color)
		o.Text = StrFromPtrWithDefault("", ov.Text)
		o.FontSize = atLeast(minFontSize, Float64FromPtrWithDefault(textFontSize, ov.FontSize))
		o.Width = atLeast(textMinWidth, positiveOr(textDefaultWidth, ov.Width))
		o.Height = atLeast(textMinHeight, positiveOr(textDefaultHeight, ov.Height))

	case TypeRect:
		o.Color = StrFromPtrWithDefault(shapeColor, ov.Color)
		o.Stroke = StrFromPtrWithDefault(defaultStroke, ov.Stroke)
		o.StrokeWidth = atLeast(minStrokeWidth, Float64FromPtrWithDefault(defaultStrokeWidth, ov.StrokeWidth))
		o.Width = positiveOr(shapeDefaultWidth, ov.Width)
		o.Height = positiveOr(shapeDefaultHeight, ov.Height)

	case TypeCircle:
		o.Color = StrFromPtrWithDefault(shapeColor, ov.Color)
		o.Stroke = StrFromPtrWithDefault(defaultStroke, ov.Stroke)
		o.StrokeWidth = atLeast(minStrokeWidth, Float64FromPtrWithDefault(defaultStrokeWidth, ov.StrokeWidth))
		// Circles are squared to the larger requested dimension.
		size := 0.0
		if ov.Width != nil && *ov.Width > size {
			size = *ov.Width
		}
		if ov.Height != nil && *ov.Height > size {
			size = *ov.Height
		}
		if size <= 0 {
			size = circleDefaultSize
		}
		o.Width = size
		o.Height = size
		o.Radius = size / 2

	case TypeLine:
		o.Color = StrFromPtrWithDefault(lineColor, ov.Color)
		o.Stroke = StrFromPtrWithDefault(defaultStroke, ov.Stroke)
		o.StrokeWidth = atLeast(minStrokeWidth, Float64FromPtrWithDefault(defaultStrokeWidth, ov.StrokeWidth))
		o.Points = coercePoints(ov.Points, []float64{0, 0, defaultSegmentLength, 0})
		w, h := pointSpan(o.Points)
		o.Width = atLeast(minSegmentSize, Float64FromPtrWithDefault(w, ov.Width))
		o.Height = atLeast(minSegmentSize, Float64FromPtrWithDefault(h, ov.Height))

	case TypeFrame:
		o.Color = StrFromPtrWithDefault(frameColor, ov.Color)
		o.Title = StrFromPtrWithDefault(frameDefaultTitle, ov.Title)
		o.Stroke = StrFromPtrWithDefault(frameStroke, ov.Stroke)
		o.StrokeWidth = atLeast(minStrokeWidth, Float64FromPtrWithDefault(defaultStrokeWidth, ov.StrokeWidth))
		o.Width = atLeast(frameMinWidth, positiveOr(frameDefaultWidth, ov.Width))
		o.Height = atLeast(frameMinHeight, positiveOr(frameDefaultHeight, ov.Height))

	case TypeConnector:
		o.Color = StrFromPtrWithDefault(connectorColor, ov.Color)
		o.FromID = StrFromPtrWithDefault("", ov.FromID)
		o.ToID = StrFromPtrWithDefault("", ov.ToID)
		// Anchors exist only while the corresponding endpoint is attached.
		if o.FromID != "" {
			o.FromAnchorX = Num(clamp01(Float64FromPtrWithDefault(0.5, ov.FromAnchorX)))
			o.FromAnchorY = Num(clamp01(Float64FromPtrWithDefault(0.5, ov.FromAnchorY)))
		}
		if o.ToID != "" {
			o.ToAnchorX = Num(clamp01(Float64FromPtrWithDefault(0.5, ov.ToAnchorX)))
			o.ToAnchorY = Num(clamp01(Float64FromPtrWithDefault(0.5, ov.ToAnchorY)))
		}
		o.Style = coerceConnectorStyle(ov.Style)
		o.StrokeStyle = coerceStrokeStyle(ov.StrokeStyle)
		o.ConnectorType = coerceConnectorType(ov.ConnectorType)
		o.StartArrow = coerceArrowStyle(ov.StartArrow, ArrowNone)
		o.EndArrow = coerceArrowStyle(ov.EndArrow, ArrowSolid)
		o.LabelPosition = Num(clampRange(Float64FromPtrWithDefault(defaultLabelPosition, ov.LabelPosition), 0, 100))
		o.PathControlX = clonePtr(ov.PathControlX)
		o.PathControlY = clonePtr(ov.PathControlY)
		o.CurveOffset = Float64FromPtrWithDefault(0, ov.CurveOffset)
		o.Points = coercePoints(ov.Points, []float64{o.X, o.Y, o.X + defaultSegmentLength, o.Y})
		// Connector geometry lives in the points; x/y/width/height mirror
		// their bounding box.
		minX, minY, w, h := pointBounds(o.Points)
		o.X = minX
		o.Y = minY
		o.Width = atLeast(minSegmentSize, w)
		o.Height = atLeast(minSegmentSize, h)
	}

	return o, nil
}

// coercePoints returns pts when it is a usable flat coordinate list (even
// length, at least two pairs), truncating a trailing odd value. Anything
// shorter falls back.
func coercePoints(pts, fallback []float64) []float64 {
	if len(pts)%2 == 1 {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 4 {
		return append([]float64(nil), fallback...)
	}
	return append([]float64(nil), pts...)
}

func pointSpan(pts []float64) (w, h float64) {
	_, _, w, h = pointBounds(pts)
	return w, h
}

func pointBounds(pts []float64) (minX, minY, w, h float64) {
	if len(pts) < 2 {
		return 0, 0, 0, 0
	}
	minX, minY = pts[0], pts[1]
	maxX, maxY := pts[0], pts[1]
	for i := 2; i+1 < len(pts); i += 2 {
		if pts[i] < minX {
			minX = pts[i]
		}
		if pts[i] > maxX {
			maxX = pts[i]
		}
		if pts[i+1] < minY {
			minY = pts[i+1]
		}
		if pts[i+1] > maxY {
			maxY = pts[i+1]
		}
	}
	return minX, minY, maxX - minX, maxY - minY
}

func atLeast(min, v float64) float64 {
	if v < min {
		return min
	}
	return v
}

// positiveOr treats zero and negative dimensions as absent.
func positiveOr(fallback float64, p *float64) float64 {
	if p == nil || *p <= 0 {
		return fallback
	}
	return *p
}

func clamp01(v float64) float64 { return clampRange(v, 0, 1) }

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func coerceConnectorStyle(p *ConnectorStyle) ConnectorStyle {
	if p != nil && validConnectorStyles[*p] {
		return *p
	}
	return StyleArrow
}

func coerceStrokeStyle(p *StrokeStyle) StrokeStyle {
	if p != nil && validStrokeStyles[*p] {
		return *p
	}
	return StrokeSolid
}

func coerceConnectorType(p *ConnectorType) ConnectorType {
	if p != nil && validConnectorTypes[*p] {
		return *p
	}
	return ConnectorStraight
}

func coerceArrowStyle(p *ArrowStyle, fallback ArrowStyle) ArrowStyle {
	if p != nil && validArrowStyles[*p] {
		return *p
	}
	return fallback
}
