package domain

import (
	"math"
	"testing"

	m "bugtally.dev/pkg/bugtally/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter_Count(t *testing.T) {
	counter := NewCounter(0)

	got, err := counter.Count(m.DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, int64(31), got)

	_, err = counter.Count(m.Params{Iterations: -1})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCounter_Trace(t *testing.T) {
	counter := NewCounter(0)

	steps, err := counter.Trace(m.DefaultParams())
	require.NoError(t, err)
	require.Len(t, steps, 15)

	assert.Equal(t, m.Step{Index: 1, Before: 1, AfterFix: 0, AfterIntro: 3}, steps[0])
	assert.Equal(t, m.Step{Index: 2, Before: 3, AfterFix: 2, AfterIntro: 5}, steps[1])
	assert.Equal(t, m.Step{Index: 3, Before: 5, AfterFix: 4, AfterIntro: 7}, steps[2])
	assert.Equal(t, int64(31), steps[14].AfterIntro)

	for i := 1; i < len(steps); i++ {
		assert.Equal(t, steps[i-1].AfterIntro, steps[i].Before)
	}
}

func TestCounter_TraceZeroIterations(t *testing.T) {
	steps, err := NewCounter(0).Trace(m.Params{InitialBugs: 4, FixedPerStep: 1, IntroducedPerStep: 3})
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestCounter_TraceInvalid(t *testing.T) {
	counter := NewCounter(10)

	_, err := counter.Trace(m.Params{Iterations: -1})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = counter.Trace(m.Params{Iterations: 11})
	require.ErrorIs(t, err, ErrInvalidArgument)

	steps, err := counter.Trace(m.Params{Iterations: 10})
	require.NoError(t, err)
	assert.Len(t, steps, 10)
}

func TestNewCounter_DefaultLimit(t *testing.T) {
	counter, ok := NewCounter(-5).(*recurrenceCounter)
	require.True(t, ok)
	assert.Equal(t, int64(DefaultMaxTraceSteps), counter.maxTraceSteps)
}

func TestCounter_TraceRaisedLimitDoesNotPreallocate(t *testing.T) {
	counter := NewCounter(math.MaxInt64)
	params := m.Params{InitialBugs: math.MaxInt64 - 2, Iterations: 1 << 60, FixedPerStep: 0, IntroducedPerStep: 1}

	var err error
	assert.NotPanics(t, func() {
		_, err = counter.Trace(params)
	})
	require.ErrorIs(t, err, ErrOverflow)
	assert.Contains(t, err.Error(), "step 3")
}

func TestCounter_TraceRejectsOverflowingNetDelta(t *testing.T) {
	counter := NewCounter(0)

	tests := []struct {
		name   string
		params m.Params
	}{
		{"no steps", m.Params{FixedPerStep: math.MinInt64, IntroducedPerStep: 1}},
		{"steps fit", m.Params{InitialBugs: -2, Iterations: 1, FixedPerStep: math.MinInt64, IntroducedPerStep: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := counter.Trace(tt.params)
			require.ErrorIs(t, err, ErrOverflow)
		})
	}
}
