package ode

import "math"

const (
	defaultTol = 1e-8

	// Internal steps never grow past this fraction of the grid spacing,
	// so at least a few derivative evaluations land between samples.
	maxStepFraction = 1.0
)

// Solve integrates sys from x0 over grid and returns the state sampled
// exactly at every grid point. The first trajectory entry is x0 itself,
// untouched by the stepper. Internal adaptive steps are independent of
// the sample spacing; each sample time is hit exactly by clipping the
// final substep.
//
// On failure no partial trajectory is returned: the error is a
// *SolveError wrapping ErrStepTooSmall or ErrDiverged.
func Solve(sys System, x0 State, grid TimeGrid) (Trajectory, error) {
	if grid.N < 2 {
		return nil, ErrGridTooShort
	}

	times := grid.Times()
	traj := make(Trajectory, 0, grid.N)
	traj = append(traj, x0.Clone())

	stepper := NewRK45()
	x := x0.Clone()
	t := 0.0
	dt := grid.Dt()
	maxDt := grid.Dt() * maxStepFraction

	for i := 1; i < len(times); i++ {
		target := times[i]

		for t < target {
			h := dt
			clipped := false
			if t+h >= target {
				h = target - t
				clipped = true
			}

			xNew, used, dtNext, err := stepper.StepAdaptive(sys, x, t, h, defaultTol)
			if err != nil {
				return nil, &SolveError{Time: t, Sample: i, Wrapped: err}
			}
			if !xNew.IsValid() {
				return nil, &SolveError{Time: t, Sample: i, Wrapped: ErrDiverged}
			}

			x = xNew
			if clipped && used == h {
				t = target
			} else {
				t += used
			}
			dt = math.Min(dtNext, maxDt)
		}

		traj = append(traj, x.Clone())
	}

	return traj, nil
}
