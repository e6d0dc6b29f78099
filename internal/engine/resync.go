package engine

import (
	"github.com/evanharte/pinboard/internal/board"
	"github.com/evanharte/pinboard/internal/router"
)

// resyncConnectors recomputes the points of every connector in the working
// snapshot against its current endpoint objects. Called after every applied
// action so a move or resize immediately keeps dependent connectors
// geometrically correct before the next action runs. Fully unattached
// connectors keep their literal points.
func resyncConnectors(rec board.Record, res router.Resolver) {
	for id, o := range rec {
		if o.Type != board.TypeConnector {
			continue
		}
		from := endpointObject(rec, o.FromID)
		to := endpointObject(rec, o.ToID)
		if from == nil && to == nil {
			continue
		}

		req := router.Request{
			From:          from,
			To:            to,
			FromAnchorX:   anchorOr(o.FromAnchorX, 0.5),
			FromAnchorY:   anchorOr(o.FromAnchorY, 0.5),
			ToAnchorX:     anchorOr(o.ToAnchorX, 0.5),
			ToAnchorY:     anchorOr(o.ToAnchorY, 0.5),
			ConnectorType: o.ConnectorType,
			PathControlX:  o.PathControlX,
			PathControlY:  o.PathControlY,
			CurveOffset:   o.CurveOffset,
			Obstacles:     obstacleBounds(rec, o.FromID, o.ToID),
			Fallback:      o.Points,
		}

		ov := board.OverridesFrom(o)
		ov.Points = res.Resolve(req)
		next, err := board.New(board.TypeConnector, ov)
		if err != nil {
			continue
		}
		next.UpdatedAt = o.UpdatedAt
		rec[id] = next
	}
}

func endpointObject(rec board.Record, id string) *board.Object {
	if id == "" {
		return nil
	}
	o, ok := rec[id]
	if !ok {
		return nil
	}
	c := o.Clone()
	return &c
}

func anchorOr(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}

// obstacleBounds collects the bounding boxes a route should avoid: every
// non-connector object except the two endpoints.
func obstacleBounds(rec board.Record, fromID, toID string) []board.Rect {
	var out []board.Rect
	for id, o := range rec {
		if o.Type == board.TypeConnector || id == fromID || id == toID {
			continue
		}
		out = append(out, board.BoundsOf(o))
	}
	return out
}
