// Package viz renders the phase-space view in the terminal.
//
// The interactive view is a Bubble Tea program around a Braille pixel
// canvas:
//
//   - [PhasePlot]: data-coordinate plotting with fixed axis bounds
//   - [Model]: trajectory view, parameter panel, and click cursor
//
// # Key Bindings
//
//	Arrows/HJKL - move the click cursor
//	Enter       - re-seed the simulation from the cursor
//	Tab, +/-    - select and adjust a rate parameter
//	Space, [ ]  - play/pause and scrub the trajectory animation
//	R           - reset to defaults
//
// The animation reveals the already-computed trajectory incrementally;
// it never changes the underlying data.
package viz
