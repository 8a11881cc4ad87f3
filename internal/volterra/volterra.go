package volterra

import (
	"math"

	"github.com/san-kum/lotkaviz/internal/ode"
)

// Control bounds and slider step sizes for the four rate parameters.
const (
	AlphaMin, AlphaMax, AlphaStep = 0.1, 2.0, 0.1
	BetaMin, BetaMax, BetaStep    = 0.01, 0.5, 0.01
	GammaMin, GammaMax, GammaStep = 0.1, 2.0, 0.1
	DeltaMin, DeltaMax, DeltaStep = 0.01, 0.2, 0.01
)

// Params holds the four Lotka-Volterra rate constants.
type Params struct {
	Alpha float64 // prey growth rate
	Beta  float64 // predation rate
	Gamma float64 // predator death rate
	Delta float64 // predator growth from predation
}

func DefaultParams() Params {
	return Params{Alpha: 1.0, Beta: 0.1, Gamma: 1.5, Delta: 0.075}
}

// Clamp returns a copy with every parameter pinned to its control bounds.
func (p Params) Clamp() Params {
	p.Alpha = clamp(p.Alpha, AlphaMin, AlphaMax)
	p.Beta = clamp(p.Beta, BetaMin, BetaMax)
	p.Gamma = clamp(p.Gamma, GammaMin, GammaMax)
	p.Delta = clamp(p.Delta, DeltaMin, DeltaMax)
	return p
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Model implements the predator-prey vector field.
// State: [x, y] = [prey, predators]
// Equations:
//
//	dx/dt = alpha*x - beta*x*y
//	dy/dt = -gamma*y + delta*x*y
type Model struct {
	Params Params
}

func New(p Params) *Model {
	return &Model{Params: p}
}

func (m *Model) StateDim() int { return 2 }

func (m *Model) Derive(s ode.State, _ float64) ode.State {
	x, y := s[0], s[1]
	p := m.Params

	dx := p.Alpha*x - p.Beta*x*y
	dy := -p.Gamma*y + p.Delta*x*y

	return ode.State{dx, dy}
}

func (m *Model) DefaultState() ode.State {
	return ode.State{10.0, 5.0}
}

// Equilibrium returns the nontrivial fixed point (gamma/delta, alpha/beta).
func (m *Model) Equilibrium() ode.State {
	return ode.State{m.Params.Gamma / m.Params.Delta, m.Params.Alpha / m.Params.Beta}
}

// Invariant evaluates the conserved quantity
// V = delta*x - gamma*ln(x) + beta*y - alpha*ln(y), constant along exact
// solutions with positive populations. Useful for accuracy checks.
func (m *Model) Invariant(s ode.State) float64 {
	x, y := s[0], s[1]
	p := m.Params
	return p.Delta*x - p.Gamma*math.Log(x) + p.Beta*y - p.Alpha*math.Log(y)
}

// GetParams exposes the rate constants for generic parameter panels.
func (m *Model) GetParams() map[string]float64 {
	return map[string]float64{
		"alpha": m.Params.Alpha,
		"beta":  m.Params.Beta,
		"gamma": m.Params.Gamma,
		"delta": m.Params.Delta,
	}
}

func (m *Model) SetParam(name string, v float64) {
	switch name {
	case "alpha":
		m.Params.Alpha = clamp(v, AlphaMin, AlphaMax)
	case "beta":
		m.Params.Beta = clamp(v, BetaMin, BetaMax)
	case "gamma":
		m.Params.Gamma = clamp(v, GammaMin, GammaMax)
	case "delta":
		m.Params.Delta = clamp(v, DeltaMin, DeltaMax)
	}
}
