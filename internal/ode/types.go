package ode

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System is a time-dependent vector field dx/dt = f(x, t).
type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

// Stepper advances a system state by a single fixed timestep.
type Stepper interface {
	Step(sys System, x State, t, dt float64) State
}

// AdaptiveStepper takes one error-controlled step, reporting the step
// size actually taken and suggesting the size of the next one.
type AdaptiveStepper interface {
	Stepper
	StepAdaptive(sys System, x State, t, dt, tol float64) (State, float64, float64, error)
}

// TimeGrid is an evenly spaced sample grid over [0, End].
type TimeGrid struct {
	End float64
	N   int
}

func NewTimeGrid(end float64, n int) TimeGrid {
	return TimeGrid{End: end, N: n}
}

// Times returns the N sample points, endpoints included.
func (g TimeGrid) Times() []float64 {
	ts := make([]float64, g.N)
	if g.N < 2 {
		return ts
	}
	dt := g.End / float64(g.N-1)
	for i := range ts {
		ts[i] = float64(i) * dt
	}
	ts[g.N-1] = g.End
	return ts
}

// Dt is the spacing between adjacent sample points.
func (g TimeGrid) Dt() float64 {
	if g.N < 2 {
		return 0
	}
	return g.End / float64(g.N-1)
}

// Trajectory is the state sampled at each point of a TimeGrid.
type Trajectory []State
