package ode

import (
	"errors"
	"fmt"
)

// Domain errors for the solver.
var (
	// ErrDiverged indicates the integration produced a NaN or Inf state.
	ErrDiverged = errors.New("ode: state diverged (NaN or Inf)")

	// ErrStepTooSmall indicates the adaptive timestep fell below the minimum.
	ErrStepTooSmall = errors.New("ode: adaptive timestep below minimum")

	// ErrGridTooShort indicates a time grid with fewer than two points.
	ErrGridTooShort = errors.New("ode: time grid needs at least two points")
)

// SolveError wraps a solver failure with the time and grid index at
// which integration broke down.
type SolveError struct {
	Time    float64
	Sample  int
	Wrapped error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("solve failed at t=%.4f (sample %d): %v", e.Time, e.Sample, e.Wrapped)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
