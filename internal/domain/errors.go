// Package domain implements the pending-bug recurrence.
package domain

import "errors"

var (
	// ErrInvalidArgument is returned for parameters the recurrence is not defined for.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOverflow is returned when a count does not fit in an int64.
	ErrOverflow = errors.New("integer overflow")
)
