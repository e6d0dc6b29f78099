package board

import "time"

// Overrides is a partial set of object fields. Nil fields fall through to
// the variant default (construction) or to the existing value (patching).
// Every object enters the document through New with an Overrides value, so
// invariants are re-checked on every change.
type Overrides struct {
	ID        *string    `json:"id,omitempty"`
	X         *float64   `json:"x,omitempty"`
	Y         *float64   `json:"y,omitempty"`
	Width     *float64   `json:"width,omitempty"`
	Height    *float64   `json:"height,omitempty"`
	Rotation  *float64   `json:"rotation,omitempty"`
	Color     *string    `json:"color,omitempty"`
	ZIndex    *int       `json:"zIndex,omitempty"`
	CreatedBy *string    `json:"createdBy,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`

	Text     *string  `json:"text,omitempty"`
	FontSize *float64 `json:"fontSize,omitempty"`

	Stroke      *string  `json:"stroke,omitempty"`
	StrokeWidth *float64 `json:"strokeWidth,omitempty"`

	Title *string `json:"title,omitempty"`

	Points []float64 `json:"points,omitempty"`

	FromID        *string         `json:"fromId,omitempty"`
	ToID          *string         `json:"toId,omitempty"`
	FromAnchorX   *float64        `json:"fromAnchorX,omitempty"`
	FromAnchorY   *float64        `json:"fromAnchorY,omitempty"`
	ToAnchorX     *float64        `json:"toAnchorX,omitempty"`
	ToAnchorY     *float64        `json:"toAnchorY,omitempty"`
	Style         *ConnectorStyle `json:"style,omitempty"`
	StrokeStyle   *StrokeStyle    `json:"strokeStyle,omitempty"`
	ConnectorType *ConnectorType  `json:"connectorType,omitempty"`
	StartArrow    *ArrowStyle     `json:"startArrow,omitempty"`
	EndArrow      *ArrowStyle     `json:"endArrow,omitempty"`
	LabelPosition *float64        `json:"labelPosition,omitempty"`
	PathControlX  *float64        `json:"pathControlX,omitempty"`
	PathControlY  *float64        `json:"pathControlY,omitempty"`
	CurveOffset   *float64        `json:"curveOffset,omitempty"`
}

// Merge layers patch over o: every non-nil patch field wins. Neither input
// is modified.
func (o Overrides) Merge(patch Overrides) Overrides {
	out := o
	if patch.ID != nil {
		out.ID = patch.ID
	}
	if patch.X != nil {
		out.X = patch.X
	}
	if patch.Y != nil {
		out.Y = patch.Y
	}
	if patch.Width != nil {
		out.Width = patch.Width
	}
	if patch.Height != nil {
		out.Height = patch.Height
	}
	if patch.Rotation != nil {
		out.Rotation = patch.Rotation
	}
	if patch.Color != nil {
		out.Color = patch.Color
	}
	if patch.ZIndex != nil {
		out.ZIndex = patch.ZIndex
	}
	if patch.CreatedBy != nil {
		out.CreatedBy = patch.CreatedBy
	}
	if patch.UpdatedAt != nil {
		out.UpdatedAt = patch.UpdatedAt
	}
	if patch.Text != nil {
		out.Text = patch.Text
	}
	if patch.FontSize != nil {
		out.FontSize = patch.FontSize
	}
	if patch.Stroke != nil {
		out.Stroke = patch.Stroke
	}
	if patch.StrokeWidth != nil {
		out.StrokeWidth = patch.StrokeWidth
	}
	if patch.Title != nil {
		out.Title = patch.Title
	}
	if patch.Points != nil {
		out.Points = append([]float64(nil), patch.Points...)
	}
	if patch.FromID != nil {
		out.FromID = patch.FromID
	}
	if patch.ToID != nil {
		out.ToID = patch.ToID
	}
	if patch.FromAnchorX != nil {
		out.FromAnchorX = patch.FromAnchorX
	}
	if patch.FromAnchorY != nil {
		out.FromAnchorY = patch.FromAnchorY
	}
	if patch.ToAnchorX != nil {
		out.ToAnchorX = patch.ToAnchorX
	}
	if patch.ToAnchorY != nil {
		out.ToAnchorY = patch.ToAnchorY
	}
	if patch.Style != nil {
		out.Style = patch.Style
	}
	if patch.StrokeStyle != nil {
		out.StrokeStyle = patch.StrokeStyle
	}
	if patch.ConnectorType != nil {
		out.ConnectorType = patch.ConnectorType
	}
	if patch.StartArrow != nil {
		out.StartArrow = patch.StartArrow
	}
	if patch.EndArrow != nil {
		out.EndArrow = patch.EndArrow
	}
	if patch.LabelPosition != nil {
		out.LabelPosition = patch.LabelPosition
	}
	if patch.PathControlX != nil {
		out.PathControlX = patch.PathControlX
	}
	if patch.PathControlY != nil {
		out.PathControlY = patch.PathControlY
	}
	if patch.CurveOffset != nil {
		out.CurveOffset = patch.CurveOffset
	}
	return out
}

// OverridesFrom captures every field of an existing object as a fully
// populated Overrides value. Used to rebuild an object through the factory
// on update, and as the exact pre-image carried by inverse actions.
func OverridesFrom(o Object) Overrides {
	ov := Overrides{
		ID:        Str(o.ID),
		X:         Num(o.X),
		Y:         Num(o.Y),
		Width:     Num(o.Width),
		Height:    Num(o.Height),
		Rotation:  Num(o.Rotation),
		Color:     Str(o.Color),
		ZIndex:    Int(o.ZIndex),
		CreatedBy: Str(o.CreatedBy),
		UpdatedAt: Time(o.UpdatedAt),
	}
	switch o.Type {
	case TypeSticky, TypeText:
		ov.Text = Str(o.Text)
		ov.FontSize = Num(o.FontSize)
	case TypeRect, TypeCircle:
		ov.Stroke = Str(o.Stroke)
		ov.StrokeWidth = Num(o.StrokeWidth)
	case TypeLine:
		ov.Stroke = Str(o.Stroke)
		ov.StrokeWidth = Num(o.StrokeWidth)
		ov.Points = append([]float64(nil), o.Points...)
	case TypeFrame:
		ov.Title = Str(o.Title)
		ov.Stroke = Str(o.Stroke)
		ov.StrokeWidth = Num(o.StrokeWidth)
	case TypeConnector:
		ov.FromID = Str(o.FromID)
		ov.ToID = Str(o.ToID)
		ov.FromAnchorX = clonePtr(o.FromAnchorX)
		ov.FromAnchorY = clonePtr(o.FromAnchorY)
		ov.ToAnchorX = clonePtr(o.ToAnchorX)
		ov.ToAnchorY = clonePtr(o.ToAnchorY)
		style := o.Style
		ov.Style = &style
		strokeStyle := o.StrokeStyle
		ov.StrokeStyle = &strokeStyle
		connType := o.ConnectorType
		ov.ConnectorType = &connType
		start := o.StartArrow
		ov.StartArrow = &start
		end := o.EndArrow
		ov.EndArrow = &end
		ov.LabelPosition = clonePtr(o.LabelPosition)
		ov.PathControlX = clonePtr(o.PathControlX)
		ov.PathControlY = clonePtr(o.PathControlY)
		ov.CurveOffset = Num(o.CurveOffset)
		ov.Points = append([]float64(nil), o.Points...)
	}
	return ov
}

// Str returns a pointer to s.
func Str(s string) *string { return &s }

// Num returns a pointer to f.
func Num(f float64) *float64 { return &f }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Time returns a pointer to t.
func Time(t time.Time) *time.Time { return &t }

// StrFromPtrWithDefault returns the first non-nil *string value, or the fallback.
func StrFromPtrWithDefault(fallback string, ptrs ...*string) string {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// IntFromPtrWithDefault returns the first non-nil *int value, or the fallback.
func IntFromPtrWithDefault(fallback int, ptrs ...*int) int {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// Float64FromPtrWithDefault returns the first non-nil *float64 value, or the fallback.
func Float64FromPtrWithDefault(fallback float64, ptrs ...*float64) float64 {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}
