package session_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lotkaviz/internal/ode"
	"github.com/san-kum/lotkaviz/internal/session"
	"github.com/san-kum/lotkaviz/internal/volterra"
)

func f(v float64) *float64 { return &v }

var _ = Describe("Session", func() {
	var sess *session.Session

	BeforeEach(func() {
		sess = session.NewDefault()
	})

	Describe("defaults", func() {
		It("starts at (10, 5) with the standard parameters", func() {
			Expect(sess.InitialCondition()).To(Equal(ode.State{10.0, 5.0}))
			Expect(sess.Params()).To(Equal(volterra.Params{Alpha: 1.0, Beta: 0.1, Gamma: 1.5, Delta: 0.075}))
		})

		It("samples t in [0, 100] at 1000 points", func() {
			frame, err := sess.Step(session.Input{})
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Times).To(HaveLen(1000))
			Expect(frame.Trajectory).To(HaveLen(1000))
			Expect(frame.Times[0]).To(Equal(0.0))
			Expect(frame.Times[999]).To(Equal(100.0))
		})
	})

	Describe("seeding", func() {
		It("starts each trajectory exactly at the initial condition", func() {
			frame, err := sess.Step(session.Input{})
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Trajectory[0]).To(Equal(frame.InitialCondition))
		})

		It("re-seeds from a click", func() {
			frame, err := sess.Step(session.Input{Click: &session.Click{X: 20.0, Y: 15.0}})
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Trajectory[0]).To(Equal(ode.State{20.0, 15.0}))
			Expect(sess.InitialCondition()).To(Equal(ode.State{20.0, 15.0}))
		})

		It("keeps the stored initial condition across parameter-only steps", func() {
			_, err := sess.Step(session.Input{Click: &session.Click{X: 20.0, Y: 15.0}})
			Expect(err).NotTo(HaveOccurred())

			frame, err := sess.Step(session.Input{Alpha: f(1.2)})
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.InitialCondition).To(Equal(ode.State{20.0, 15.0}))
			Expect(frame.Params.Alpha).To(Equal(1.2))
		})

		It("lets a click win over the stored value in a combined batch", func() {
			_, err := sess.Step(session.Input{Click: &session.Click{X: 30.0, Y: 25.0}})
			Expect(err).NotTo(HaveOccurred())

			// Parameter change and click in the same batch: both apply.
			frame, err := sess.Step(session.Input{
				Alpha: f(1.5),
				Click: &session.Click{X: 12.0, Y: 8.0},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Trajectory[0]).To(Equal(ode.State{12.0, 8.0}))
			Expect(frame.Params.Alpha).To(Equal(1.5))
		})

		It("ignores clicks with non-finite coordinates", func() {
			frame, err := sess.Step(session.Input{Click: &session.Click{X: math.NaN(), Y: 5.0}})
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.InitialCondition).To(Equal(ode.State{10.0, 5.0}))
		})
	})

	Describe("parameters", func() {
		It("clamps out-of-range values to the control bounds", func() {
			frame, err := sess.Step(session.Input{Alpha: f(10.0), Delta: f(-3.0)})
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Params.Alpha).To(Equal(volterra.AlphaMax))
			Expect(frame.Params.Delta).To(Equal(volterra.DeltaMin))
		})

		It("only replaces parameters present in the batch", func() {
			frame, err := sess.Step(session.Input{Beta: f(0.2)})
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Params.Beta).To(Equal(0.2))
			Expect(frame.Params.Alpha).To(Equal(1.0))
			Expect(frame.Params.Gamma).To(Equal(1.5))
		})
	})

	Describe("input coalescing", func() {
		It("collapses merged batches to the latest value per field", func() {
			first := session.Input{Alpha: f(0.5), Click: &session.Click{X: 1, Y: 1}}
			second := session.Input{Alpha: f(1.8), Beta: f(0.3)}

			merged := first.Merge(second)
			Expect(*merged.Alpha).To(Equal(1.8))
			Expect(*merged.Beta).To(Equal(0.3))
			Expect(merged.Click.X).To(Equal(1.0))
		})
	})

	Describe("dynamics", func() {
		It("stays at the equilibrium fixed point", func() {
			// alpha=gamma, beta=delta puts the fixed point at
			// (gamma/delta, alpha/beta) = (10, 10).
			sess = session.New(
				volterra.Params{Alpha: 1.0, Beta: 0.1, Gamma: 1.0, Delta: 0.1},
				ode.State{10.0, 10.0},
				ode.NewTimeGrid(100, 1000),
			)

			frame, err := sess.Step(session.Input{})
			Expect(err).NotTo(HaveOccurred())
			for _, st := range frame.Trajectory {
				Expect(st[0]).To(BeNumerically("~", 10.0, 1e-6))
				Expect(st[1]).To(BeNumerically("~", 10.0, 1e-6))
			}
		})

		It("produces a closed oscillation under the default parameters", func() {
			frame, err := sess.Step(session.Input{})
			Expect(err).NotTo(HaveOccurred())

			// The orbit is periodic: after leaving the start it must
			// come back near (10, 5) somewhere in the latter samples.
			start := frame.Trajectory[0]
			closest := math.Inf(1)
			for _, st := range frame.Trajectory[100:] {
				d := math.Hypot(st[0]-start[0], st[1]-start[1])
				if d < closest {
					closest = d
				}
			}
			Expect(closest).To(BeNumerically("<", 1.0))
		})

		It("recomputes deterministically", func() {
			a, err := sess.Step(session.Input{})
			Expect(err).NotTo(HaveOccurred())
			b, err := sess.Step(session.Input{})
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Trajectory).To(Equal(a.Trajectory))
		})
	})

	Describe("failure handling", func() {
		It("surfaces integration failure and keeps the previous frame", func() {
			good, err := sess.Step(session.Input{})
			Expect(err).NotTo(HaveOccurred())

			// Display bounds are a rendering concern, so the session
			// accepts this click; the solver is what gives up.
			_, err = sess.Step(session.Input{Click: &session.Click{X: 1e200, Y: 1e200}})
			Expect(err).To(HaveOccurred())

			var solveErr *ode.SolveError
			Expect(errors.As(err, &solveErr)).To(BeTrue())
			Expect(sess.Last()).To(BeIdenticalTo(good))
		})

		It("does not poison later cycles", func() {
			_, err := sess.Step(session.Input{Click: &session.Click{X: 1e200, Y: 1e200}})
			Expect(err).To(HaveOccurred())

			// A fresh click recovers; the failed cycle left no residue
			// beyond the stored (extreme) initial condition.
			frame, err := sess.Step(session.Input{Click: &session.Click{X: 20.0, Y: 15.0}})
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Trajectory[0]).To(Equal(ode.State{20.0, 15.0}))
		})
	})

	Describe("reset", func() {
		It("restores the defaults", func() {
			_, err := sess.Step(session.Input{Alpha: f(2.0), Click: &session.Click{X: 50, Y: 40}})
			Expect(err).NotTo(HaveOccurred())

			sess.Reset()
			Expect(sess.Params()).To(Equal(volterra.DefaultParams()))
			Expect(sess.InitialCondition()).To(Equal(ode.State{10.0, 5.0}))
		})
	})
})
