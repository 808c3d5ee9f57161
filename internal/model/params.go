// Package model defines the data structures for the pending-bug recurrence.
package model

// Params holds the inputs of the recurrence.
type Params struct {
	InitialBugs       int64 `yaml:"initial_bugs"`
	Iterations        int64 `yaml:"iterations"`
	FixedPerStep      int64 `yaml:"fixed_per_step"`
	IntroducedPerStep int64 `yaml:"introduced_per_step"`
}

// DefaultParams returns the classic puzzle instance: one bug, fifteen fix steps,
// one bug fixed and three introduced per step.
func DefaultParams() Params {
	return Params{
		InitialBugs:       1,
		Iterations:        15,
		FixedPerStep:      1,
		IntroducedPerStep: 3,
	}
}

// NetDelta returns the per-step change in pending bugs.
// It does not check for overflow: use it only on params that a
// successful domain.Counter Count or Trace has accepted.
func (p Params) NetDelta() int64 {
	return p.IntroducedPerStep - p.FixedPerStep
}

// Trend reports whether the count grows, shrinks or stays put as
// iterations increase.
func (p Params) Trend() Trend {
	switch {
	case p.IntroducedPerStep > p.FixedPerStep:
		return Increasing
	case p.IntroducedPerStep < p.FixedPerStep:
		return Decreasing
	default:
		return Constant
	}
}
