package board

import "time"

// NormalizeLoaded validates untyped external data (a decoded persistence row
// or a remote event payload) into a board object. It returns nil for
// anything that is not an object map or whose type falls outside the closed
// seven-variant set; everything else is delegated to the factory with the
// fallback creator and a fresh zIndex/timestamp where the raw data has none.
func NormalizeLoaded(raw any, fallbackUserID string) *Object {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	typ, ok := getString(m, "type")
	if !ok || !ValidObjectTypes[ObjectType(typ)] {
		return nil
	}

	ov := overridesFromMap(m)
	if ov.CreatedBy == nil || *ov.CreatedBy == "" {
		ov.CreatedBy = Str(fallbackUserID)
	}
	o, err := New(ObjectType(typ), ov)
	if err != nil {
		return nil
	}
	return &o
}

// overridesFromMap extracts every recognized field from a loose map.
// Missing and mistyped values are simply absent; the factory supplies
// defaults.
func overridesFromMap(m map[string]any) Overrides {
	var ov Overrides
	if v, ok := getString(m, "id"); ok {
		ov.ID = Str(v)
	}
	if v, ok := getNumber(m, "x"); ok {
		ov.X = Num(v)
	}
	if v, ok := getNumber(m, "y"); ok {
		ov.Y = Num(v)
	}
	if v, ok := getNumber(m, "width"); ok {
		ov.Width = Num(v)
	}
	if v, ok := getNumber(m, "height"); ok {
		ov.Height = Num(v)
	}
	if v, ok := getNumber(m, "rotation"); ok {
		ov.Rotation = Num(v)
	}
	if v, ok := getString(m, "color"); ok {
		ov.Color = Str(v)
	}
	if v, ok := getNumber(m, "zIndex"); ok {
		ov.ZIndex = Int(int(v))
	}
	if v, ok := getString(m, "createdBy"); ok {
		ov.CreatedBy = Str(v)
	}
	if v, ok := getString(m, "updatedAt"); ok {
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			ov.UpdatedAt = Time(t)
		}
	}
	if v, ok := getString(m, "text"); ok {
		ov.Text = Str(v)
	}
	if v, ok := getNumber(m, "fontSize"); ok {
		ov.FontSize = Num(v)
	}
	if v, ok := getString(m, "stroke"); ok {
		ov.Stroke = Str(v)
	}
	if v, ok := getNumber(m, "strokeWidth"); ok {
		ov.StrokeWidth = Num(v)
	}
	if v, ok := getString(m, "title"); ok {
		ov.Title = Str(v)
	}
	if pts, ok := getNumberSlice(m, "points"); ok {
		ov.Points = pts
	}
	if v, ok := getString(m, "fromId"); ok {
		ov.FromID = Str(v)
	}
	if v, ok := getString(m, "toId"); ok {
		ov.ToID = Str(v)
	}
	if v, ok := getNumber(m, "fromAnchorX"); ok {
		ov.FromAnchorX = Num(v)
	}
	if v, ok := getNumber(m, "fromAnchorY"); ok {
		ov.FromAnchorY = Num(v)
	}
	if v, ok := getNumber(m, "toAnchorX"); ok {
		ov.ToAnchorX = Num(v)
	}
	if v, ok := getNumber(m, "toAnchorY"); ok {
		ov.ToAnchorY = Num(v)
	}
	if v, ok := getString(m, "style"); ok {
		s := ConnectorStyle(v)
		ov.Style = &s
	}
	if v, ok := getString(m, "strokeStyle"); ok {
		s := StrokeStyle(v)
		ov.StrokeStyle = &s
	}
	if v, ok := getString(m, "connectorType"); ok {
		s := ConnectorType(v)
		ov.ConnectorType = &s
	}
	if v, ok := getString(m, "startArrow"); ok {
		s := ArrowStyle(v)
		ov.StartArrow = &s
	}
	if v, ok := getString(m, "endArrow"); ok {
		s := ArrowStyle(v)
		ov.EndArrow = &s
	}
	if v, ok := getNumber(m, "labelPosition"); ok {
		ov.LabelPosition = Num(v)
	}
	if v, ok := getNumber(m, "pathControlX"); ok {
		ov.PathControlX = Num(v)
	}
	if v, ok := getNumber(m, "pathControlY"); ok {
		ov.PathControlY = Num(v)
	}
	if v, ok := getNumber(m, "curveOffset"); ok {
		ov.CurveOffset = Num(v)
	}
	return ov
}

// helpers for type-safe extraction from loose maps

func getString(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

func getNumber(m map[string]any, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	return toNumber(v)
}

func getNumberSlice(m map[string]any, key string) ([]float64, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	switch vv := v.(type) {
	case []float64:
		return append([]float64(nil), vv...), true
	case []any:
		out := make([]float64, 0, len(vv))
		for _, e := range vv {
			n, ok := toNumber(e)
			if !ok {
				return nil, false
			}
			out = append(out, n)
		}
		return out, true
	default:
		return nil, false
	}
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
