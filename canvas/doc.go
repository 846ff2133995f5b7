// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas provides a gg-backed rendering surface for polyplay
// sessions.
//
// Canvas keeps a retained list of shapes (markers and segments) and a
// viewport transform, and redraws them into a gg.Context on Render. The data
// flow is:
//
//	polyplay.Session (events) -> Canvas (shapes, transform) -> gg.Context -> PNG / window
//
// # Usage
//
//	cv, err := canvas.New(800, 600, canvas.WithWorkspace(800, 500, gg.White))
//	if err != nil {
//	    return err
//	}
//	defer cv.Close()
//
//	s := polyplay.NewSession()
//	s.Mount(cv)
//	s.EnableDraw()
//	s.PointerDown(polyplay.PointerEvent{X: 100, Y: 100})
//
//	if err := cv.Render(); err != nil {
//	    return err
//	}
//	img := cv.Image()
//
// # Dirty Tracking
//
// Surface mutations and RequestRender mark the canvas dirty. Render redraws
// only when dirty, so hosts can call it every frame.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Create one Canvas per session,
// or use external synchronization.
package canvas
