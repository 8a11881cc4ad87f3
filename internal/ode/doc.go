// Package ode provides numerical integration of initial-value problems.
//
// The package defines the core types for sampling an ODE system on a
// fixed time grid:
//
//   - [State]: system state vector
//   - [System]: vector field interface (dx/dt = f(x, t))
//   - [TimeGrid]: evenly spaced sample points over [0, End]
//   - [Solve]: adaptive integration with dense output at grid points
//
// # Example
//
//	sys := volterra.New(volterra.DefaultParams())
//	grid := ode.NewTimeGrid(100, 1000)
//	traj, err := ode.Solve(sys, ode.State{10, 5}, grid)
//
// Integration uses a Dormand-Prince RK45 stepper with local error
// control. The internal step sequence is independent of the grid; each
// grid point is sampled exactly.
package ode
