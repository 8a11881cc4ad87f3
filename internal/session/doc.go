// Package session ties user inputs to trajectory recomputation.
//
// A [Session] holds the current rate parameters and initial condition.
// Each call to [Session.Step] consumes one coalesced [Input] batch,
// resolves the effective initial condition (click wins over the stored
// value, parameters always take their latest values), re-runs the
// integrator over the full time grid, and returns a [Frame] for the
// presentation layer.
//
// Session state survives failed cycles: an integration failure is
// returned to the caller while the previous successful frame remains
// available through [Session.Last].
package session
