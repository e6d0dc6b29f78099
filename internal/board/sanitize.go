package board

// Sanitize re-runs an object through the factory and projects it down to
// the fields relevant to its variant, dropping everything derived objects
// may have accumulated from patches against other types. The result is the
// record the persistence boundary writes, and the value basis for diffs.
func Sanitize(o Object) Object {
	rebuilt, err := New(o.Type, OverridesFrom(o))
	if err != nil {
		// Unknown types never get this far; keep the input untouched if
		// they somehow do.
		return o
	}
	rebuilt.UpdatedAt = o.UpdatedAt

	s := Object{
		ID:        rebuilt.ID,
		Type:      rebuilt.Type,
		X:         rebuilt.X,
		Y:         rebuilt.Y,
		Width:     rebuilt.Width,
		Height:    rebuilt.Height,
		Rotation:  rebuilt.Rotation,
		Color:     rebuilt.Color,
		ZIndex:    rebuilt.ZIndex,
		CreatedBy: rebuilt.CreatedBy,
		UpdatedAt: rebuilt.UpdatedAt,
	}

	switch o.Type {
	case TypeSticky, TypeText:
		s.Text = rebuilt.Text
		s.FontSize = rebuilt.FontSize
	case TypeRect:
		s.Stroke = rebuilt.Stroke
		s.StrokeWidth = rebuilt.StrokeWidth
	case TypeCircle:
		s.Stroke = rebuilt.Stroke
		s.StrokeWidth = rebuilt.StrokeWidth
		s.Radius = rebuilt.Radius
	case TypeLine:
		s.Stroke = rebuilt.Stroke
		s.StrokeWidth = rebuilt.StrokeWidth
		s.Points = rebuilt.Points
	case TypeFrame:
		s.Title = rebuilt.Title
		s.Stroke = rebuilt.Stroke
		s.StrokeWidth = rebuilt.StrokeWidth
	case TypeConnector:
		s.FromID = rebuilt.FromID
		s.ToID = rebuilt.ToID
		s.FromAnchorX = rebuilt.FromAnchorX
		s.FromAnchorY = rebuilt.FromAnchorY
		s.ToAnchorX = rebuilt.ToAnchorX
		s.ToAnchorY = rebuilt.ToAnchorY
		s.Style = rebuilt.Style
		s.StrokeStyle = rebuilt.StrokeStyle
		s.ConnectorType = rebuilt.ConnectorType
		s.StartArrow = rebuilt.StartArrow
		s.EndArrow = rebuilt.EndArrow
		s.LabelPosition = rebuilt.LabelPosition
		s.PathControlX = rebuilt.PathControlX
		s.PathControlY = rebuilt.PathControlY
		s.CurveOffset = rebuilt.CurveOffset
		s.Points = rebuilt.Points
	}

	return s
}
