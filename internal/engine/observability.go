package engine

import (
	"time"

	"github.com/rs/zerolog"
)

// ExecutionEvent records metadata about one plan execution.
type ExecutionEvent struct {
	PlanID            string
	ActionCount       int
	OK                bool
	FailedActionIndex int
	LatencyMs         int64
}

// Observer receives events about plan executions for logging and metrics.
type Observer interface {
	OnPlanExecuted(event ExecutionEvent)
}

// LogObserver writes execution events to a zerolog logger.
type LogObserver struct {
	log zerolog.Logger
}

// NewLogObserver creates an Observer that logs events via log.
func NewLogObserver(log zerolog.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) OnPlanExecuted(event ExecutionEvent) {
	evt := o.log.Info()
	if !event.OK {
		evt = o.log.Warn().Int("failed_action_index", event.FailedActionIndex)
	}
	evt.Str("plan_id", event.PlanID).
		Int("actions", event.ActionCount).
		Bool("ok", event.OK).
		Int64("latency_ms", event.LatencyMs).
		Msg("plan executed")
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnPlanExecuted(ExecutionEvent) {}

func notify(obs Observer, plan *Plan, r Result, started time.Time) {
	if obs == nil {
		return
	}
	obs.OnPlanExecuted(ExecutionEvent{
		PlanID:            plan.PlanID,
		ActionCount:       len(plan.Actions),
		OK:                r.OK,
		FailedActionIndex: r.FailedActionIndex,
		LatencyMs:         time.Since(started).Milliseconds(),
	})
}
