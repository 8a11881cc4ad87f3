package ode

import (
	"errors"
	"math"
	"testing"
)

type decaySystem struct{}

func (d *decaySystem) StateDim() int { return 1 }

func (d *decaySystem) Derive(x State, t float64) State {
	return State{-x[0]}
}

func TestTimeGrid(t *testing.T) {
	grid := NewTimeGrid(100, 1000)
	times := grid.Times()

	if len(times) != 1000 {
		t.Fatalf("expected 1000 points, got %d", len(times))
	}
	if times[0] != 0 {
		t.Errorf("grid must start at 0, got %f", times[0])
	}
	if times[len(times)-1] != 100 {
		t.Errorf("grid must end at 100, got %f", times[len(times)-1])
	}

	dt := grid.Dt()
	for i := 1; i < len(times); i++ {
		if math.Abs(times[i]-times[i-1]-dt) > 1e-9 {
			t.Fatalf("uneven spacing at %d: %f", i, times[i]-times[i-1])
		}
	}
}

func TestSolve_SeedFidelity(t *testing.T) {
	x0 := State{10.0, 5.0}
	traj, err := Solve(&harmonicOscillator{}, x0, NewTimeGrid(10, 100))
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	for i := range x0 {
		if traj[0][i] != x0[i] {
			t.Errorf("trajectory must start exactly at the seed: got %v, want %v", traj[0], x0)
		}
	}
}

func TestSolve_TrajectoryLength(t *testing.T) {
	grid := NewTimeGrid(10, 237)
	traj, err := Solve(&harmonicOscillator{}, State{1.0, 0.0}, grid)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if len(traj) != grid.N {
		t.Errorf("expected %d samples, got %d", grid.N, len(traj))
	}
}

func TestSolve_SeedNotAliased(t *testing.T) {
	x0 := State{1.0, 0.0}
	traj, err := Solve(&harmonicOscillator{}, x0, NewTimeGrid(1, 10))
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	traj[0][0] = 99
	if x0[0] != 1.0 {
		t.Error("solve must not alias the caller's initial state")
	}
}

func TestSolve_Deterministic(t *testing.T) {
	grid := NewTimeGrid(10, 500)
	a, err := Solve(&harmonicOscillator{}, State{1.0, 0.0}, grid)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	b, err := Solve(&harmonicOscillator{}, State{1.0, 0.0}, grid)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
			}
		}
	}
}

func TestSolve_Accuracy(t *testing.T) {
	grid := NewTimeGrid(5, 501)
	traj, err := Solve(&decaySystem{}, State{1.0}, grid)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	times := grid.Times()
	for i, ts := range times {
		want := math.Exp(-ts)
		if math.Abs(traj[i][0]-want) > 1e-6 {
			t.Fatalf("sample %d (t=%.3f): got %.9f, want %.9f", i, ts, traj[i][0], want)
		}
	}
}

func TestSolve_Failure(t *testing.T) {
	_, err := Solve(&blowupSystem{}, State{1e200}, NewTimeGrid(10, 100))
	if err == nil {
		t.Fatal("expected solve to fail")
	}

	var solveErr *SolveError
	if !errors.As(err, &solveErr) {
		t.Fatalf("expected *SolveError, got %T", err)
	}
	if !errors.Is(err, ErrStepTooSmall) {
		t.Errorf("expected ErrStepTooSmall in chain, got %v", err)
	}
}

func TestSolve_GridTooShort(t *testing.T) {
	_, err := Solve(&decaySystem{}, State{1.0}, NewTimeGrid(10, 1))
	if !errors.Is(err, ErrGridTooShort) {
		t.Errorf("expected ErrGridTooShort, got %v", err)
	}
}
