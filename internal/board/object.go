package board

import "time"

// Object is one visual primitive in a shared board document. A single struct
// carries all seven variants; Type decides which of the optional fields are
// meaningful, and Sanitize projects an object down to exactly those fields.
type Object struct {
	ID        string     `json:"id"`
	Type      ObjectType `json:"type"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	Rotation  float64    `json:"rotation"`
	Color     string     `json:"color"`
	ZIndex    int        `json:"zIndex"`
	CreatedBy string     `json:"createdBy"`
	UpdatedAt time.Time  `json:"updatedAt"`

	// sticky, text; aliased onto Title for frames at the patch boundary.
	Text     string  `json:"text,omitempty"`
	FontSize float64 `json:"fontSize,omitempty"`

	// rect, circle, line, frame
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`

	// circle
	Radius float64 `json:"radius,omitempty"`

	// frame
	Title string `json:"title,omitempty"`

	// line (local to X/Y), connector (board coordinates)
	Points []float64 `json:"points,omitempty"`

	// connector
	FromID        string         `json:"fromId,omitempty"`
	ToID          string         `json:"toId,omitempty"`
	FromAnchorX   *float64       `json:"fromAnchorX,omitempty"`
	FromAnchorY   *float64       `json:"fromAnchorY,omitempty"`
	ToAnchorX     *float64       `json:"toAnchorX,omitempty"`
	ToAnchorY     *float64       `json:"toAnchorY,omitempty"`
	Style         ConnectorStyle `json:"style,omitempty"`
	StrokeStyle   StrokeStyle    `json:"strokeStyle,omitempty"`
	ConnectorType ConnectorType  `json:"connectorType,omitempty"`
	StartArrow    ArrowStyle     `json:"startArrow,omitempty"`
	EndArrow      ArrowStyle     `json:"endArrow,omitempty"`
	LabelPosition *float64       `json:"labelPosition,omitempty"`
	PathControlX  *float64       `json:"pathControlX,omitempty"`
	PathControlY  *float64       `json:"pathControlY,omitempty"`
	CurveOffset   float64        `json:"curveOffset,omitempty"`
}

// Clone returns a deep copy of the object. Slices and pointer fields are
// duplicated so the copy never aliases the original.
func (o Object) Clone() Object {
	c := o
	if o.Points != nil {
		c.Points = append([]float64(nil), o.Points...)
	}
	c.FromAnchorX = clonePtr(o.FromAnchorX)
	c.FromAnchorY = clonePtr(o.FromAnchorY)
	c.ToAnchorX = clonePtr(o.ToAnchorX)
	c.ToAnchorY = clonePtr(o.ToAnchorY)
	c.LabelPosition = clonePtr(o.LabelPosition)
	c.PathControlX = clonePtr(o.PathControlX)
	c.PathControlY = clonePtr(o.PathControlY)
	return c
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
