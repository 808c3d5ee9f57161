package domain

import (
	"fmt"
	"log/slog"

	m "bugtally.dev/pkg/bugtally/internal/model"
)

// Validate checks params once before any evaluation.
func Validate(params m.Params) error {
	if params.Iterations < 0 {
		return fmt.Errorf("%w: iterations must be non-negative, got %d", ErrInvalidArgument, params.Iterations)
	}

	return nil
}

// Iterate evaluates the recurrence by applying every fix step in turn.
func Iterate(params m.Params) (int64, error) {
	if err := Validate(params); err != nil {
		return 0, err
	}

	count := params.InitialBugs

	for i := int64(0); i < params.Iterations; i++ {
		next, err := applyStep(count, params)
		if err != nil {
			return 0, fmt.Errorf("step %d: %w", i+1, err)
		}

		count = next.AfterIntro
	}

	return count, nil
}

// NetDelta returns introducedPerStep - fixedPerStep, failing with
// ErrOverflow when the difference does not fit in an int64.
func NetDelta(params m.Params) (int64, error) {
	delta, ok := subInt64(params.IntroducedPerStep, params.FixedPerStep)
	if !ok {
		return 0, fmt.Errorf("net delta %d - %d: %w", params.IntroducedPerStep, params.FixedPerStep, ErrOverflow)
	}

	return delta, nil
}

// ClosedForm evaluates initialBugs + iterations*netDelta.
func ClosedForm(params m.Params) (int64, error) {
	if err := Validate(params); err != nil {
		return 0, err
	}

	delta, err := NetDelta(params)
	if err != nil {
		return 0, err
	}

	growth, ok := mulInt64(params.Iterations, delta)
	if !ok {
		return 0, fmt.Errorf("%d iterations of delta %d: %w", params.Iterations, delta, ErrOverflow)
	}

	count, ok := addInt64(params.InitialBugs, growth)
	if !ok {
		return 0, fmt.Errorf("%d initial bugs plus %d: %w", params.InitialBugs, growth, ErrOverflow)
	}

	return count, nil
}

func applyStep(count int64, params m.Params) (m.Step, error) {
	afterFix, ok := subInt64(count, params.FixedPerStep)
	if !ok {
		return m.Step{}, fmt.Errorf("fixing %d of %d: %w", params.FixedPerStep, count, ErrOverflow)
	}

	afterIntro, ok := addInt64(afterFix, params.IntroducedPerStep)
	if !ok {
		return m.Step{}, fmt.Errorf("introducing %d to %d: %w", params.IntroducedPerStep, afterFix, ErrOverflow)
	}

	slog.Debug("applied fix step", "before", count, "after_fix", afterFix, "after_introduce", afterIntro)

	return m.Step{Before: count, AfterFix: afterFix, AfterIntro: afterIntro}, nil
}
