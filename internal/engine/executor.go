package engine

import (
	"fmt"
	"time"

	"github.com/evanharte/pinboard/internal/board"
	"github.com/evanharte/pinboard/internal/router"

	"github.com/google/uuid"
)

// ExecuteInput carries one execution request. CurrentObjects is read-only
// to the executor; the caller keeps exclusive ownership of it and of the
// returned snapshot.
type ExecuteInput struct {
	Plan           *Plan
	CurrentObjects board.Record
	ActorUserID    string

	// Resolver is optional; the default routing engine is used when nil.
	Resolver router.Resolver
	// Observer is optional; it receives one event per execution.
	Observer Observer
}

// Execute applies a plan to a snapshot all-or-nothing. Actions run strictly
// in order against a private clone; after every action all connectors are
// resynchronized against their endpoints, so ordering within a plan is
// observable for connector-dependent sequences. On the first failing action
// the clone is discarded and the result names the failed index; the
// caller's snapshot is never mutated on any path.
func Execute(in ExecuteInput) Result {
	res := in.Resolver
	if res == nil {
		res = router.New()
	}
	started := time.Now()

	work := in.CurrentObjects.Clone()
	now := time.Now().UTC()
	inverse := make([]Action, 0, len(in.Plan.Actions))

	for k, act := range in.Plan.Actions {
		inv, err := applyAction(work, act, in.ActorUserID, now)
		if err != nil {
			r := Result{OK: false, Err: err, FailedActionIndex: k}
			notify(in.Observer, in.Plan, r, started)
			return r
		}
		// Prepend: replaying inverseActions as a plan undoes the
		// transaction in exactly the reverse order actions applied.
		inverse = append([]Action{inv}, inverse...)
		resyncConnectors(work, res)
	}

	r := Result{
		OK:                true,
		FailedActionIndex: -1,
		NextObjects:       work,
		Diff:              computeDiff(in.CurrentObjects, work),
		Transaction: &Transaction{
			TxID:           uuid.New().String(),
			Actions:        in.Plan.Actions,
			InverseActions: inverse,
			CreatedAt:      now,
			ActorUserID:    in.ActorUserID,
		},
	}
	notify(in.Observer, in.Plan, r, started)
	return r
}

// applyAction mutates the working snapshot with one action and returns the
// inverse action that undoes it. Shared with the compiler's working-copy
// simulation.
func applyAction(work board.Record, act Action, actor string, now time.Time) (Action, error) {
	switch act.Kind {
	case ActionCreate:
		return applyCreate(work, act, actor, now)
	case ActionUpdate:
		return applyUpdate(work, act, now)
	case ActionDelete:
		return applyDelete(work, act)
	default:
		return Action{}, fmt.Errorf("unknown action kind %q", act.Kind)
	}
}

func applyCreate(work board.Record, act Action, actor string, now time.Time) (Action, error) {
	if act.Object == nil {
		return Action{}, fmt.Errorf("create action carries no object")
	}
	obj := *act.Object
	if _, exists := work[obj.ID]; exists {
		return Action{}, fmt.Errorf("%w: %s", ErrDuplicateID, obj.ID)
	}

	// Re-validate through the factory so invariants hold no matter who
	// built the action.
	rebuilt, err := board.New(obj.Type, board.OverridesFrom(obj))
	if err != nil {
		return Action{}, fmt.Errorf("creating %s: %w", obj.ID, err)
	}
	if rebuilt.CreatedBy == "" {
		rebuilt.CreatedBy = actor
	}
	rebuilt.UpdatedAt = now
	work[rebuilt.ID] = rebuilt

	return Action{Kind: ActionDelete, ObjectID: rebuilt.ID}, nil
}

func applyUpdate(work board.Record, act Action, now time.Time) (Action, error) {
	cur, ok := work[act.ObjectID]
	if !ok {
		return Action{}, fmt.Errorf("%w: %s", ErrNotFound, act.ObjectID)
	}

	var patch board.Overrides
	if act.Patch != nil {
		patch = *act.Patch
	}
	patch, err := adaptPatch(cur, patch)
	if err != nil {
		return Action{}, err
	}

	merged := board.OverridesFrom(cur).Merge(patch)
	next, err := board.New(cur.Type, merged)
	if err != nil {
		return Action{}, fmt.Errorf("updating %s: %w", act.ObjectID, err)
	}
	next.UpdatedAt = now
	work[act.ObjectID] = next

	// The inverse carries the entire prior object, not a partial delta,
	// guaranteeing exact restoration regardless of what changed.
	pre := board.OverridesFrom(cur)
	return Action{Kind: ActionUpdate, ObjectID: act.ObjectID, Patch: &pre}, nil
}

func applyDelete(work board.Record, act Action) (Action, error) {
	cur, ok := work[act.ObjectID]
	if !ok {
		return Action{}, fmt.Errorf("%w: %s", ErrNotFound, act.ObjectID)
	}
	delete(work, act.ObjectID)

	pre := cur.Clone()
	return Action{Kind: ActionCreate, Object: &pre}, nil
}

// adaptPatch enforces per-variant patch legality and rewrites the special
// cases: text on a frame maps onto its title, and a width/height-only patch
// on a line or connector becomes an equivalent points delta preserving the
// existing start point.
func adaptPatch(cur board.Object, patch board.Overrides) (board.Overrides, error) {
	if patch.Text != nil {
		switch cur.Type {
		case board.TypeSticky, board.TypeText:
			// direct text carriers
		case board.TypeFrame:
			if patch.Title == nil {
				patch.Title = patch.Text
			}
			patch.Text = nil
		default:
			return patch, fmt.Errorf("%w: text is not valid for %s objects", ErrInvalidPatch, cur.Type)
		}
	}
	if patch.Title != nil && cur.Type != board.TypeFrame {
		return patch, fmt.Errorf("%w: title is only valid for frame objects", ErrInvalidPatch)
	}
	if patch.Points != nil && cur.Type != board.TypeLine && cur.Type != board.TypeConnector {
		return patch, fmt.Errorf("%w: points are not valid for %s objects", ErrInvalidPatch, cur.Type)
	}

	// Connector x/y mirror the points' bounding box, so a bare x/y move
	// would be recomputed away. Translate the points (and any path control
	// point) by the requested delta instead.
	if cur.Type == board.TypeConnector && patch.Points == nil &&
		(patch.X != nil || patch.Y != nil) {
		dx := board.Float64FromPtrWithDefault(cur.X, patch.X) - cur.X
		dy := board.Float64FromPtrWithDefault(cur.Y, patch.Y) - cur.Y
		if dx != 0 || dy != 0 {
			pts := append([]float64(nil), cur.Points...)
			for i := 0; i+1 < len(pts); i += 2 {
				pts[i] += dx
				pts[i+1] += dy
			}
			patch.Points = pts
			if cur.PathControlX != nil {
				patch.PathControlX = board.Num(*cur.PathControlX + dx)
			}
			if cur.PathControlY != nil {
				patch.PathControlY = board.Num(*cur.PathControlY + dy)
			}
		}
	}

	if (cur.Type == board.TypeLine || cur.Type == board.TypeConnector) &&
		patch.Points == nil && (patch.Width != nil || patch.Height != nil) {
		w := board.Float64FromPtrWithDefault(cur.Width, patch.Width)
		h := board.Float64FromPtrWithDefault(cur.Height, patch.Height)
		// Width and height stay in the patch: lines honor the explicit
		// values, connectors re-derive them from the scaled points.
		patch.Points = board.ScalePointsTo(cur.Points, w, h)
	}

	return patch, nil
}
