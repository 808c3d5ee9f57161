package domain

import (
	"fmt"
	"log/slog"

	m "bugtally.dev/pkg/bugtally/internal/model"
)

// DefaultMaxTraceSteps bounds the length of a trace.
const DefaultMaxTraceSteps = 1000

// Counter computes pending bug counts.
type Counter interface {
	Count(params m.Params) (int64, error)
	Trace(params m.Params) ([]m.Step, error)
}

type recurrenceCounter struct {
	maxTraceSteps int64
}

// NewCounter creates a Counter. A non-positive maxTraceSteps falls back to
// DefaultMaxTraceSteps.
func NewCounter(maxTraceSteps int64) Counter {
	if maxTraceSteps <= 0 {
		maxTraceSteps = DefaultMaxTraceSteps
	}

	return &recurrenceCounter{maxTraceSteps: maxTraceSteps}
}

// Count returns the pending bugs after params.Iterations fix steps.
// Params are validated by ClosedForm, so callers may skip Validate.
func (c *recurrenceCounter) Count(params m.Params) (int64, error) {
	count, err := ClosedForm(params)
	if err != nil {
		slog.Error("failed to count pending bugs", "params", params, "error", err)
		return 0, err
	}

	slog.Info("counted pending bugs", "params", params, "pending", count)

	return count, nil
}

// Trace runs the recurrence step by step and returns every step.
// A successful trace guarantees the net delta fits in an int64.
func (c *recurrenceCounter) Trace(params m.Params) ([]m.Step, error) {
	if err := Validate(params); err != nil {
		slog.Error("invalid trace parameters", "params", params, "error", err)
		return nil, err
	}

	if params.Iterations > c.maxTraceSteps {
		return nil, fmt.Errorf("%w: trace of %d steps exceeds the limit of %d", ErrInvalidArgument, params.Iterations, c.maxTraceSteps)
	}

	if _, err := NetDelta(params); err != nil {
		return nil, err
	}

	// The limit may be raised far past what can be preallocated.
	steps := make([]m.Step, 0, min(params.Iterations, DefaultMaxTraceSteps))
	count := params.InitialBugs

	for i := int64(1); i <= params.Iterations; i++ {
		step, err := applyStep(count, params)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		step.Index = i
		steps = append(steps, step)
		count = step.AfterIntro
	}

	slog.Info("traced pending bugs", "params", params, "steps", len(steps), "pending", count)

	return steps, nil
}
