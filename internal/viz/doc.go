// Package viz provides terminal-based visualization for particle emitters.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [NewInteractiveApp]: preset picker that launches a live view
//   - [Model]: live emitter view with a 3D camera and population chart
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - Theme selection with built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset emitter
//	B     - Emit a burst
//	E     - Start/stop continuous emission
//	X/Y/Z - Rotate camera, +/- zoom
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//
// # Recording
//
// The live view supports recording sessions as GIF animations using the
// G key. Recordings are saved to the current directory.
package viz
