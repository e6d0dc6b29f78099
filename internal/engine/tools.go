package engine

import (
	"fmt"

	"github.com/evanharte/pinboard/internal/board"
)

// The closed tool-call contract consumed by the compiler. Unknown names
// fail compilation.
const (
	ToolCreateStickyNote = "createStickyNote"
	ToolCreateShape      = "createShape"
	ToolCreateFrame      = "createFrame"
	ToolCreateConnector  = "createConnector"
	ToolMoveObject       = "moveObject"
	ToolResizeObject     = "resizeObject"
	ToolUpdateText       = "updateText"
	ToolChangeColor      = "changeColor"
	ToolDeleteObject     = "deleteObject"
	ToolRemoveObject     = "removeObject" // documented alias of deleteObject
	ToolGetBoardState    = "getBoardState"
)

// Preview is one not-yet-compiled tool call as proposed by the AI agent.
type Preview struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Input map[string]any `json:"input"`
}

// Per-tool input structs, decoded once at the compiler boundary so nothing
// stringly typed flows further in.

type stickyNoteInput struct {
	ID            *string
	X, Y          float64
	Text          string
	Color         *string
	Width, Height *float64
}

type shapeInput struct {
	ID            *string
	Shape         board.ObjectType
	X, Y          float64
	Width, Height *float64
	Color         *string
	Stroke        *string
	EndX, EndY    *float64 // line-only second endpoint
}

type frameInput struct {
	ID            *string
	X, Y          float64
	Title         string
	Color         *string
	Width, Height *float64
}

type connectorInput struct {
	ID            *string
	FromID, ToID  string
	Style         board.ConnectorStyle
	ConnectorType *board.ConnectorType
	StrokeStyle   *board.StrokeStyle
	Color         *string
}

type moveInput struct {
	ObjectID string
	X, Y     float64
}

type resizeInput struct {
	ObjectID      string
	Width, Height float64
}

type updateTextInput struct {
	ObjectID string
	NewText  string
}

type changeColorInput struct {
	ObjectID string
	Color    string
}

type deleteInput struct {
	ObjectID string
}

func decodeStickyNote(name string, in map[string]any) (stickyNoteInput, error) {
	var out stickyNoteInput
	var err error
	out.ID = optStringPtr(in, "id")
	if out.X, err = requireNumber(name, in, "x"); err != nil {
		return out, err
	}
	if out.Y, err = requireNumber(name, in, "y"); err != nil {
		return out, err
	}
	out.Text, _ = optString(in, "text")
	out.Color = optStringPtr(in, "color")
	out.Width = optNumberPtr(in, "width")
	out.Height = optNumberPtr(in, "height")
	return out, nil
}

func decodeShape(name string, in map[string]any) (shapeInput, error) {
	var out shapeInput
	out.ID = optStringPtr(in, "id")
	typ, err := requireString(name, in, "type")
	if err != nil {
		return out, err
	}
	switch board.ObjectType(typ) {
	case board.TypeRect, board.TypeCircle, board.TypeLine:
		out.Shape = board.ObjectType(typ)
	default:
		return out, fmt.Errorf("tool %q: type must be rect, circle, or line, got %q: %w", name, typ, ErrInvalidField)
	}
	if out.X, err = requireNumber(name, in, "x"); err != nil {
		return out, err
	}
	if out.Y, err = requireNumber(name, in, "y"); err != nil {
		return out, err
	}
	out.Width = optNumberPtr(in, "width")
	out.Height = optNumberPtr(in, "height")
	out.Color = optStringPtr(in, "color")
	out.Stroke = optStringPtr(in, "stroke")
	// Line endpoints accept either x2/y2 or toX/toY.
	out.EndX = firstNumberPtr(in, "x2", "toX")
	out.EndY = firstNumberPtr(in, "y2", "toY")
	return out, nil
}

func decodeFrame(name string, in map[string]any) (frameInput, error) {
	var out frameInput
	var err error
	out.ID = optStringPtr(in, "id")
	if out.X, err = requireNumber(name, in, "x"); err != nil {
		return out, err
	}
	if out.Y, err = requireNumber(name, in, "y"); err != nil {
		return out, err
	}
	out.Title, _ = optString(in, "title")
	if out.Title == "" {
		out.Title = "Frame"
	}
	out.Color = optStringPtr(in, "color")
	out.Width = optNumberPtr(in, "width")
	out.Height = optNumberPtr(in, "height")
	return out, nil
}

func decodeConnector(name string, in map[string]any) (connectorInput, error) {
	var out connectorInput
	var err error
	out.ID = optStringPtr(in, "id")
	if out.FromID, err = requireString(name, in, "fromId"); err != nil {
		return out, err
	}
	if out.ToID, err = requireString(name, in, "toId"); err != nil {
		return out, err
	}
	out.Style = board.StyleArrow
	if s, ok := optString(in, "style"); ok && board.ConnectorStyle(s) == board.StyleLine {
		out.Style = board.StyleLine
	}
	if s, ok := optString(in, "connectorType"); ok {
		ct := board.ConnectorType(s)
		out.ConnectorType = &ct
	}
	if s, ok := optString(in, "strokeStyle"); ok {
		ss := board.StrokeStyle(s)
		out.StrokeStyle = &ss
	}
	out.Color = optStringPtr(in, "color")
	return out, nil
}

func decodeMove(name string, in map[string]any) (moveInput, error) {
	var out moveInput
	var err error
	if out.ObjectID, err = requireString(name, in, "objectId"); err != nil {
		return out, err
	}
	if out.X, err = requireNumber(name, in, "x"); err != nil {
		return out, err
	}
	if out.Y, err = requireNumber(name, in, "y"); err != nil {
		return out, err
	}
	return out, nil
}

func decodeResize(name string, in map[string]any) (resizeInput, error) {
	var out resizeInput
	var err error
	if out.ObjectID, err = requireString(name, in, "objectId"); err != nil {
		return out, err
	}
	if out.Width, err = requireNumber(name, in, "width"); err != nil {
		return out, err
	}
	if out.Height, err = requireNumber(name, in, "height"); err != nil {
		return out, err
	}
	return out, nil
}

func decodeUpdateText(name string, in map[string]any) (updateTextInput, error) {
	var out updateTextInput
	var err error
	if out.ObjectID, err = requireString(name, in, "objectId"); err != nil {
		return out, err
	}
	v, ok := in["newText"]
	if !ok {
		return out, fmt.Errorf("tool %q: %w: newText", name, ErrMissingField)
	}
	s, ok := v.(string)
	if !ok {
		return out, fmt.Errorf("tool %q: %w: newText must be a string", name, ErrInvalidField)
	}
	out.NewText = s // empty string is a legal new text
	return out, nil
}

func decodeChangeColor(name string, in map[string]any) (changeColorInput, error) {
	var out changeColorInput
	var err error
	if out.ObjectID, err = requireString(name, in, "objectId"); err != nil {
		return out, err
	}
	if out.Color, err = requireString(name, in, "color"); err != nil {
		return out, err
	}
	return out, nil
}

func decodeDelete(name string, in map[string]any) (deleteInput, error) {
	var out deleteInput
	var err error
	if out.ObjectID, err = requireString(name, in, "objectId"); err != nil {
		return out, err
	}
	return out, nil
}

// loose-map extraction helpers

func requireString(tool string, in map[string]any, key string) (string, error) {
	s, ok := optString(in, key)
	if !ok {
		return "", fmt.Errorf("tool %q: %w: %s", tool, ErrMissingField, key)
	}
	return s, nil
}

func requireNumber(tool string, in map[string]any, key string) (float64, error) {
	v, ok := in[key]
	if !ok {
		return 0, fmt.Errorf("tool %q: %w: %s", tool, ErrMissingField, key)
	}
	n, ok := asNumber(v)
	if !ok {
		return 0, fmt.Errorf("tool %q: %w: %s", tool, ErrMissingField, key)
	}
	return n, nil
}

func optString(in map[string]any, key string) (string, bool) {
	v, ok := in[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

func optStringPtr(in map[string]any, key string) *string {
	if s, ok := optString(in, key); ok {
		return board.Str(s)
	}
	return nil
}

func optNumberPtr(in map[string]any, key string) *float64 {
	if v, ok := in[key]; ok {
		if n, ok := asNumber(v); ok {
			return board.Num(n)
		}
	}
	return nil
}

func firstNumberPtr(in map[string]any, keys ...string) *float64 {
	for _, k := range keys {
		if p := optNumberPtr(in, k); p != nil {
			return p
		}
	}
	return nil
}

func asNumber(v any) (float64, bool) {
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
