package polyplay

import "slices"

// Session is one interaction session over a mounted Surface: the placed
// point sequence, the viewport state and the enabled modes.
//
// Every method is a silent no-op while no surface is mounted.
//
// Session is NOT safe for concurrent use.
type Session struct {
	opts    options
	surface Surface
	tracker tracker
	view    ViewportState
	metrics *instruments

	drawOn  bool
	panOn   bool
	wheelOn bool

	subs    []subscriber
	nextSub int
}

// NewSession creates an unmounted session.
func NewSession(opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.normalize()

	return &Session{
		opts:    o,
		view:    newViewportState(&o),
		metrics: newInstruments(o.meterProvider),
	}
}

// Mount attaches the session to a surface and starts a fresh sketch with an
// identity viewport. A previously mounted surface is unmounted first. All
// modes start disabled.
func (s *Session) Mount(surface Surface) {
	if surface == nil {
		return
	}
	if s.surface != nil {
		s.Unmount()
	}
	s.surface = surface
	s.tracker.reset()
	s.view = newViewportState(&s.opts)
	surface.SetViewportTransform(IdentityTransform())
	if s.view.Zoom != 1 {
		surface.ZoomToPoint(Point{}, s.view.Zoom)
	}
	Logger().Info("polyplay: session mounted")
}

// Unmount disposes the surface and discards the sketch and viewport state.
// Safe to call when nothing is mounted.
func (s *Session) Unmount() {
	if s.surface == nil {
		return
	}
	s.surface.Dispose()
	s.surface = nil
	s.tracker.reset()
	s.view = newViewportState(&s.opts)
	s.drawOn, s.panOn, s.wheelOn = false, false, false
	Logger().Info("polyplay: session unmounted")
}

// Mounted reports whether a surface is attached.
func (s *Session) Mounted() bool {
	return s.surface != nil
}

// Surface returns the mounted surface, or nil.
func (s *Session) Surface() Surface {
	return s.surface
}

// Resize forwards a container size change to the surface.
func (s *Session) Resize(width, height int) {
	if s.surface == nil {
		return
	}
	s.surface.SetDimensions(width, height)
}

// Points returns a copy of the placed points in insertion order.
func (s *Session) Points() []Point {
	return slices.Clone(s.tracker.points)
}

// Len returns the number of placed points.
func (s *Session) Len() int {
	return len(s.tracker.points)
}

// Segments returns the number of guide segments, always max(0, Len()-1).
func (s *Session) Segments() int {
	return s.tracker.segments()
}

// CurrentMarker returns the handle of the most recently placed marker.
func (s *Session) CurrentMarker() ShapeID {
	return s.tracker.currentMarker
}

// CurrentSegment returns the handle of the most recently drawn segment.
func (s *Session) CurrentSegment() ShapeID {
	return s.tracker.currentSegment
}

// PlacePoint places a point at scene coordinates p, drawing its marker and
// the segment from the previous point. The point is dropped if the surface
// no longer accepts shapes (a closed canvas).
func (s *Session) PlacePoint(p Point) {
	if s.surface == nil {
		return
	}
	if !s.tracker.place(s.surface, &s.opts, p) {
		Logger().Warn("polyplay: point dropped, surface rejected marker", "x", p.X, "y", p.Y)
		return
	}
	s.surface.RequestRender()
	s.metrics.recordPlaced()
	Logger().Debug("polyplay: point placed", "x", p.X, "y", p.Y, "count", len(s.tracker.points))
	s.emit(Event{Kind: EventPointPlaced, Point: p})
}

// Clear removes every shape and empties the sequence. Safe to call on an
// empty sketch.
func (s *Session) Clear() {
	if s.surface == nil {
		return
	}
	s.surface.RemoveAll()
	s.tracker.reset()
	s.surface.RequestRender()
	s.metrics.recordClear()
	s.emit(Event{Kind: EventCleared})
}
