package ode

import (
	"math"
	"testing"
)

type harmonicOscillator struct{}

func (h *harmonicOscillator) StateDim() int { return 2 }

func (h *harmonicOscillator) Derive(x State, t float64) State {
	return State{x[1], -x[0]}
}

func (h *harmonicOscillator) Energy(x State) float64 {
	return 0.5 * (x[0]*x[0] + x[1]*x[1])
}

func TestRK4Accuracy(t *testing.T) {
	sys := &harmonicOscillator{}
	integ := NewRK4()

	x := State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}

	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestRK4ScratchReuse(t *testing.T) {
	sys := &harmonicOscillator{}
	integ := NewRK4()

	a := integ.Step(sys, State{1.0, 0.0}, 0, 0.01)
	b := integ.Step(sys, State{1.0, 0.0}, 0, 0.01)

	for i := range a {
		if a[i] != b[i] {
			t.Errorf("repeated step not deterministic: %v vs %v", a, b)
		}
	}
}
