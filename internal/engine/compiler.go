package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/evanharte/pinboard/internal/board"
	"github.com/evanharte/pinboard/internal/router"

	"github.com/google/uuid"
)

// BuildInput carries one compilation request. CurrentObjects is only read
// to seed the private working copy; the caller's snapshot is never touched.
type BuildInput struct {
	Previews       []Preview
	CurrentObjects board.Record
	ActorUserID    string
	Message        string

	// Resolver is optional; the default routing engine is used when nil.
	Resolver router.Resolver
}

// BuildPlan translates an ordered batch of tool-call previews into an
// ordered plan of typed actions. Each compiled action is applied to a
// working copy immediately and all connectors are resynchronized, so later
// previews can reference objects earlier previews created; connector
// geometry is materialized here, against the working copy, rather than at
// execution time. Compilation fails fast on the first invalid preview.
func BuildPlan(in BuildInput) (*Plan, error) {
	res := in.Resolver
	if res == nil {
		res = router.New()
	}

	working := in.CurrentObjects.Clone()
	nextZIndex := working.MaxZIndex() + 1
	now := time.Now().UTC()

	actions := make([]Action, 0, len(in.Previews))
	for _, pv := range in.Previews {
		act, err := compilePreview(pv, working, &nextZIndex, res)
		if err != nil {
			return nil, err
		}
		if act == nil {
			// getBoardState: a pure read, already satisfied by the snapshot.
			continue
		}
		// Simulate against the working copy so subsequent previews see
		// up-to-date positions and connections. Simulation failures (an
		// update naming an id that never existed) are the executor's to
		// report; they don't invalidate compilation.
		if _, err := applyAction(working, *act, in.ActorUserID, now); err == nil {
			resyncConnectors(working, res)
		}
		actions = append(actions, *act)
	}

	return &Plan{
		PlanID:  uuid.New().String(),
		Actions: actions,
		Message: in.Message,
	}, nil
}

func compilePreview(pv Preview, working board.Record, nextZIndex *int, res router.Resolver) (*Action, error) {
	switch pv.Name {
	case ToolCreateStickyNote:
		return compileStickyNote(pv, nextZIndex)
	case ToolCreateShape:
		return compileShape(pv, nextZIndex)
	case ToolCreateFrame:
		return compileFrame(pv, nextZIndex)
	case ToolCreateConnector:
		return compileConnector(pv, working, nextZIndex, res)
	case ToolMoveObject:
		in, err := decodeMove(pv.Name, pv.Input)
		if err != nil {
			return nil, err
		}
		patch := board.Overrides{X: board.Num(in.X), Y: board.Num(in.Y)}
		return &Action{Kind: ActionUpdate, ObjectID: in.ObjectID, Patch: &patch}, nil
	case ToolResizeObject:
		in, err := decodeResize(pv.Name, pv.Input)
		if err != nil {
			return nil, err
		}
		patch := board.Overrides{Width: board.Num(in.Width), Height: board.Num(in.Height)}
		return &Action{Kind: ActionUpdate, ObjectID: in.ObjectID, Patch: &patch}, nil
	case ToolUpdateText:
		in, err := decodeUpdateText(pv.Name, pv.Input)
		if err != nil {
			return nil, err
		}
		patch := board.Overrides{Text: board.Str(in.NewText)}
		return &Action{Kind: ActionUpdate, ObjectID: in.ObjectID, Patch: &patch}, nil
	case ToolChangeColor:
		in, err := decodeChangeColor(pv.Name, pv.Input)
		if err != nil {
			return nil, err
		}
		patch := board.Overrides{Color: board.Str(in.Color)}
		return &Action{Kind: ActionUpdate, ObjectID: in.ObjectID, Patch: &patch}, nil
	case ToolDeleteObject, ToolRemoveObject:
		in, err := decodeDelete(pv.Name, pv.Input)
		if err != nil {
			return nil, err
		}
		return &Action{Kind: ActionDelete, ObjectID: in.ObjectID}, nil
	case ToolGetBoardState:
		return nil, nil
	default:
		return nil, fmt.Errorf("tool %q: %w", pv.Name, ErrUnsupportedTool)
	}
}

func compileStickyNote(pv Preview, nextZIndex *int) (*Action, error) {
	in, err := decodeStickyNote(pv.Name, pv.Input)
	if err != nil {
		return nil, err
	}
	obj, err := board.New(board.TypeSticky, board.Overrides{
		ID:     in.ID,
		X:      board.Num(in.X),
		Y:      board.Num(in.Y),
		Text:   board.Str(in.Text),
		Color:  in.Color,
		Width:  in.Width,
		Height: in.Height,
		ZIndex: takeZIndex(nextZIndex),
	})
	if err != nil {
		return nil, err
	}
	return &Action{Kind: ActionCreate, Object: &obj}, nil
}

func compileShape(pv Preview, nextZIndex *int) (*Action, error) {
	in, err := decodeShape(pv.Name, pv.Input)
	if err != nil {
		return nil, err
	}
	ov := board.Overrides{
		ID:     in.ID,
		X:      board.Num(in.X),
		Y:      board.Num(in.Y),
		Width:  in.Width,
		Height: in.Height,
		Color:  in.Color,
		Stroke: in.Stroke,
		ZIndex: takeZIndex(nextZIndex),
	}
	if in.Shape == board.TypeLine {
		ov.Points = linePoints(in)
		ov.Width = nil
		ov.Height = nil
	}
	obj, err := board.New(in.Shape, ov)
	if err != nil {
		return nil, err
	}
	return &Action{Kind: ActionCreate, Object: &obj}, nil
}

// linePoints derives a line's local points: explicit width/height first,
// then the optional second endpoint, then the default 140x0 segment.
func linePoints(in shapeInput) []float64 {
	if in.Width != nil || in.Height != nil {
		return []float64{0, 0, orZero(in.Width), orZero(in.Height)}
	}
	if in.EndX != nil || in.EndY != nil {
		return []float64{0, 0, orZero(in.EndX) - in.X, orZero(in.EndY) - in.Y}
	}
	return []float64{0, 0, 140, 0}
}

func compileFrame(pv Preview, nextZIndex *int) (*Action, error) {
	in, err := decodeFrame(pv.Name, pv.Input)
	if err != nil {
		return nil, err
	}
	obj, err := board.New(board.TypeFrame, board.Overrides{
		ID:     in.ID,
		X:      board.Num(in.X),
		Y:      board.Num(in.Y),
		Title:  board.Str(in.Title),
		Color:  in.Color,
		Width:  in.Width,
		Height: in.Height,
		ZIndex: takeZIndex(nextZIndex),
	})
	if err != nil {
		return nil, err
	}
	return &Action{Kind: ActionCreate, Object: &obj}, nil
}

func compileConnector(pv Preview, working board.Record, nextZIndex *int, res router.Resolver) (*Action, error) {
	in, err := decodeConnector(pv.Name, pv.Input)
	if err != nil {
		return nil, err
	}

	from := endpointObject(working, in.FromID)
	to := endpointObject(working, in.ToID)
	fx, fy, tx, ty := chooseAnchors(from, to)

	connType := board.ConnectorStraight
	if in.ConnectorType != nil {
		connType = *in.ConnectorType
	}

	points := res.Resolve(router.Request{
		From:          from,
		To:            to,
		FromAnchorX:   fx,
		FromAnchorY:   fy,
		ToAnchorX:     tx,
		ToAnchorY:     ty,
		ConnectorType: connType,
		Obstacles:     obstacleBounds(working, in.FromID, in.ToID),
	})

	endArrow := board.ArrowSolid
	if in.Style == board.StyleLine {
		endArrow = board.ArrowNone
	}
	style := in.Style

	obj, err := board.New(board.TypeConnector, board.Overrides{
		ID:            in.ID,
		FromID:        board.Str(in.FromID),
		ToID:          board.Str(in.ToID),
		FromAnchorX:   board.Num(fx),
		FromAnchorY:   board.Num(fy),
		ToAnchorX:     board.Num(tx),
		ToAnchorY:     board.Num(ty),
		Style:         &style,
		StrokeStyle:   in.StrokeStyle,
		ConnectorType: &connType,
		EndArrow:      &endArrow,
		Color:         in.Color,
		Points:        points,
		ZIndex:        takeZIndex(nextZIndex),
	})
	if err != nil {
		return nil, err
	}
	return &Action{Kind: ActionCreate, Object: &obj}, nil
}

// chooseAnchors picks facing side anchors from the endpoints' relative
// positions: the dominant axis decides whether the connector leaves from a
// horizontal or vertical side.
func chooseAnchors(from, to *board.Object) (fx, fy, tx, ty float64) {
	if from == nil || to == nil {
		return 0.5, 0.5, 0.5, 0.5
	}
	fcx, fcy := board.CenterOf(*from)
	tcx, tcy := board.CenterOf(*to)
	dx, dy := tcx-fcx, tcy-fcy
	if math.Abs(dy) > math.Abs(dx) {
		if dy > 0 {
			return 0.5, 1, 0.5, 0 // bottom -> top
		}
		return 0.5, 0, 0.5, 1 // top -> bottom
	}
	if dx > 0 {
		return 1, 0.5, 0, 0.5 // right -> left
	}
	return 0, 0.5, 1, 0.5 // left -> right
}

func takeZIndex(next *int) *int {
	z := *next
	*next++
	return board.Int(z)
}

func orZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
