package session

import (
	"math"

	"github.com/san-kum/lotkaviz/internal/ode"
	"github.com/san-kum/lotkaviz/internal/volterra"
)

// Click is a point picked in phase space, in plot-data coordinates
// (prey on x, predators on y).
type Click struct {
	X float64
	Y float64
}

// Input is one coalesced batch of triggering inputs. Concurrent changes
// within an interaction frame collapse to the latest value per field;
// nil fields mean "unchanged". A click and parameter changes are
// independent axes: when both are present, both apply.
type Input struct {
	Alpha *float64
	Beta  *float64
	Gamma *float64
	Delta *float64
	Click *Click
}

// Merge combines two batches, with values from next winning per field.
func (in Input) Merge(next Input) Input {
	out := in
	if next.Alpha != nil {
		out.Alpha = next.Alpha
	}
	if next.Beta != nil {
		out.Beta = next.Beta
	}
	if next.Gamma != nil {
		out.Gamma = next.Gamma
	}
	if next.Delta != nil {
		out.Delta = next.Delta
	}
	if next.Click != nil {
		out.Click = next.Click
	}
	return out
}

// Frame is the render payload of one recompute cycle.
type Frame struct {
	Trajectory       ode.Trajectory
	Times            []float64
	InitialCondition ode.State
	Params           volterra.Params
}

// Session owns the current parameters and initial condition and turns
// input batches into trajectories. One Session serves one interactive
// session; mutation is single-owner, no locking here.
type Session struct {
	params  volterra.Params
	initial ode.State
	grid    ode.TimeGrid
	last    *Frame
}

// New creates a session seeded with explicit parameters and initial
// condition. Parameters are clamped to the control bounds once on entry;
// the initial condition is taken as-is.
func New(p volterra.Params, initial ode.State, grid ode.TimeGrid) *Session {
	return &Session{
		params:  p.Clamp(),
		initial: initial.Clone(),
		grid:    grid,
	}
}

// NewDefault creates a session with the standard defaults: parameters
// (1.0, 0.1, 1.5, 0.075), initial condition (10 prey, 5 predators),
// t in [0, 100] sampled at 1000 points.
func NewDefault() *Session {
	m := volterra.New(volterra.DefaultParams())
	return New(m.Params, m.DefaultState(), ode.NewTimeGrid(100, 1000))
}

func (s *Session) Params() volterra.Params { return s.params }

func (s *Session) InitialCondition() ode.State { return s.initial.Clone() }

func (s *Session) Grid() ode.TimeGrid { return s.grid }

// Last returns the most recent successful frame, or nil before the
// first successful Step.
func (s *Session) Last() *Frame { return s.last }

// Reset restores default parameters and initial condition. The last
// frame is kept until the next successful Step replaces it.
func (s *Session) Reset() {
	m := volterra.New(volterra.DefaultParams())
	s.params = m.Params
	s.initial = m.DefaultState()
}

// Step applies one input batch and runs one recompute cycle.
//
// Parameter values present in the batch replace the stored ones,
// clamped to their control bounds. A click replaces the stored initial
// condition; without a click the prior initial condition is reused. A
// click with non-finite coordinates is malformed and ignored.
//
// On integration failure the updated parameters and initial condition
// are kept (the failure belongs to the cycle, not the state), the last
// successful frame stays available via Last, and the error is returned
// for the presentation layer to surface.
func (s *Session) Step(in Input) (*Frame, error) {
	if in.Alpha != nil {
		s.params.Alpha = *in.Alpha
	}
	if in.Beta != nil {
		s.params.Beta = *in.Beta
	}
	if in.Gamma != nil {
		s.params.Gamma = *in.Gamma
	}
	if in.Delta != nil {
		s.params.Delta = *in.Delta
	}
	s.params = s.params.Clamp()

	if c := in.Click; c != nil && finite(c.X) && finite(c.Y) {
		s.initial = ode.State{c.X, c.Y}
	}

	traj, err := ode.Solve(volterra.New(s.params), s.initial, s.grid)
	if err != nil {
		return nil, err
	}

	frame := &Frame{
		Trajectory:       traj,
		Times:            s.grid.Times(),
		InitialCondition: s.initial.Clone(),
		Params:           s.params,
	}
	s.last = frame
	return frame, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
