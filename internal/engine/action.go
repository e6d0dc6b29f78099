// Package engine turns batches of AI tool-call previews into typed action
// plans and applies them to board snapshots atomically, producing a
// structural diff and an inverse transaction for one-step undo.
package engine

import (
	"time"

	"github.com/evanharte/pinboard/internal/board"
)

// ActionKind discriminates the three document mutations.
type ActionKind string

const (
	ActionCreate ActionKind = "create"
	ActionUpdate ActionKind = "update"
	ActionDelete ActionKind = "delete"
)

// Action is one executable document mutation. Exactly one of the variant
// payloads is set, selected by Kind: Object for creates, ObjectID+Patch for
// updates, ObjectID for deletes.
type Action struct {
	Kind     ActionKind       `json:"kind"`
	Object   *board.Object    `json:"object,omitempty"`
	ObjectID string           `json:"objectId,omitempty"`
	Patch    *board.Overrides `json:"patch,omitempty"`
}

// Plan is an immutable, not-yet-applied ordered unit of work.
type Plan struct {
	PlanID  string   `json:"planId"`
	Actions []Action `json:"actions"`
	Message string   `json:"message,omitempty"`
}

// Transaction records a successfully applied plan. InverseActions is the
// exact sequence that, applied as a new plan, restores the pre-transaction
// snapshot (modulo UpdatedAt timestamps).
type Transaction struct {
	TxID           string    `json:"txId"`
	Actions        []Action  `json:"actions"`
	InverseActions []Action  `json:"inverseActions"`
	CreatedAt      time.Time `json:"createdAt"`
	ActorUserID    string    `json:"actorUserId"`
}

// Diff lists the ids whose sanitized values changed between two snapshots.
type Diff struct {
	CreatedIDs []string `json:"createdIds"`
	UpdatedIDs []string `json:"updatedIds"`
	DeletedIDs []string `json:"deletedIds"`
}

// Result is the outcome of executing a plan. Execution never throws:
// failures come back with OK=false, the offending action index, and the
// caller's snapshot guaranteed untouched.
type Result struct {
	OK                bool
	Err               error
	FailedActionIndex int
	NextObjects       board.Record
	Diff              Diff
	Transaction       *Transaction
}

// InversePlan wraps a transaction's inverse actions as a plan ready for
// Execute, implementing one-step undo.
func (t *Transaction) InversePlan() *Plan {
	return &Plan{
		PlanID:  "undo-" + t.TxID,
		Actions: t.InverseActions,
		Message: "undo",
	}
}
