// Package polyplay provides the interaction core of a polygon sketch
// playground: placing points on a canvas, connecting them with dashed guide
// segments, and panning and zooming the view.
//
// # Overview
//
// polyplay is thin orchestration over a 2D rendering surface. It does not
// draw pixels itself; a [Surface] (see the canvas sub-package for the
// gg-backed implementation) owns shapes, the viewport transform and the
// render loop. A [Session] translates pointer and wheel events into surface
// mutations.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/polyplay"
//		"github.com/gogpu/polyplay/canvas"
//	)
//
//	cv, _ := canvas.New(800, 600)
//	s := polyplay.NewSession()
//	s.Mount(cv)
//	s.EnableDraw()
//	s.EnableWheelZoom()
//
//	// Feed host events
//	s.PointerDown(polyplay.PointerEvent{X: 10, Y: 10})
//	s.Wheel(polyplay.WheelEvent{DeltaY: -100, X: 10, Y: 10})
//
//	_ = cv.Render()
//	_ = cv.SavePNG("sketch.png")
//
// # Coordinate System
//
// Two spaces are involved:
//   - Screen: pixels of the surface, origin top-left, Y down.
//   - Scene: coordinates of placed content, independent of pan and zoom.
//
// The viewport [Transform] maps scene to screen.
//
// # Modes
//
// Draw and pan are mutually exclusive: enabling one disables the other.
// Wheel zoom is independent of both.
//
// # Thread Safety
//
// A Session is NOT safe for concurrent use. All calls are expected to come
// from the host's event loop.
package polyplay

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
