package polyplay

import "math"

// ViewportState is the zoom and drag state of a mounted session.
type ViewportState struct {
	// Zoom is the current zoom factor, always within the configured bounds.
	Zoom float64
	// Panning is true between pointer-down and pointer-up in pan mode.
	Panning bool
	// LastX and LastY are the last recorded pointer position of a drag,
	// in screen space.
	LastX, LastY float64
}

// newViewportState returns the state of a freshly mounted session.
func newViewportState(o *options) ViewportState {
	z, _ := o.clampZoom(1)
	return ViewportState{Zoom: z}
}

// clampZoom limits z to the configured bounds. NaN fails closed to the
// lower bound. The second result reports whether z was changed.
func (o *options) clampZoom(z float64) (float64, bool) {
	switch {
	case math.IsNaN(z):
		return o.zoomMin, true
	case z < o.zoomMin:
		return o.zoomMin, true
	case z > o.zoomMax:
		return o.zoomMax, true
	}
	return z, false
}

// stepZoom moves z by one step in direction dir (+1 in, -1 out). A factor on
// the precision grid stays on it. A factor left off the grid by the wheel is
// stepped exactly, so ZoomIn and ZoomOut still undo each other.
func (o *options) stepZoom(z, dir float64) float64 {
	scale := math.Pow(10, float64(o.zoomPrecision))
	if snapped := math.Round(z*scale) / scale; math.Abs(z-snapped) > gridTolerance {
		return z + dir*o.zoomStep
	}
	return math.Round((z+dir*o.zoomStep)*scale) / scale
}

// gridTolerance is the float noise accepted when deciding whether a zoom
// factor lies on the precision grid.
const gridTolerance = 1e-9

// wheelZoom applies the exponential model to z for a wheel delta.
func (o *options) wheelZoom(z, deltaY float64) float64 {
	return z * math.Pow(o.wheelBase, deltaY)
}

// Zoom returns the current zoom factor. Before Mount it returns 1 clamped to
// the configured bounds.
func (s *Session) Zoom() float64 {
	return s.view.Zoom
}

// ZoomBounds returns the configured clamp range.
func (s *Session) ZoomBounds() (minZoom, maxZoom float64) {
	return s.opts.zoomMin, s.opts.zoomMax
}

// ZoomIn increases the zoom by one step around the viewport centre.
func (s *Session) ZoomIn() {
	if s.surface == nil {
		return
	}
	s.ZoomInAt(s.surface.ViewportCenter())
}

// ZoomOut decreases the zoom by one step around the viewport centre.
func (s *Session) ZoomOut() {
	if s.surface == nil {
		return
	}
	s.ZoomOutAt(s.surface.ViewportCenter())
}

// ZoomInAt increases the zoom by one step keeping the screen point focal fixed.
func (s *Session) ZoomInAt(focal Point) {
	if s.surface == nil {
		return
	}
	s.applyZoom(s.opts.stepZoom(s.view.Zoom, 1), focal)
}

// ZoomOutAt decreases the zoom by one step keeping the screen point focal fixed.
func (s *Session) ZoomOutAt(focal Point) {
	if s.surface == nil {
		return
	}
	s.applyZoom(s.opts.stepZoom(s.view.Zoom, -1), focal)
}

// ResetView restores the identity viewport and a zoom of 1 (clamped).
func (s *Session) ResetView() {
	if s.surface == nil {
		return
	}
	s.endDrag()
	s.surface.SetViewportTransform(IdentityTransform())
	z, _ := s.opts.clampZoom(1)
	if z != 1 {
		s.surface.ZoomToPoint(Point{}, z)
	}
	prev := s.view.Zoom
	s.view.Zoom = z
	s.surface.RequestRender()
	if prev != z {
		s.emit(Event{Kind: EventZoomChanged, Zoom: z})
	}
}

// wheelFocal returns the focal point for a wheel event.
func (s *Session) wheelFocal(ev WheelEvent) Point {
	if s.opts.wheelAnchor == AnchorPointer {
		return Point{X: ev.X, Y: ev.Y}
	}
	return s.surface.ViewportCenter()
}

// handleWheel zooms for a wheel event according to the configured model.
func (s *Session) handleWheel(ev WheelEvent) {
	focal := s.wheelFocal(ev)
	if s.opts.zoomModel == ZoomExponential {
		s.applyZoom(s.opts.wheelZoom(s.view.Zoom, ev.DeltaY), focal)
		return
	}
	if ev.DeltaY < 0 {
		s.ZoomInAt(focal)
	} else {
		s.ZoomOutAt(focal)
	}
}

// applyZoom clamps z and hands it to the surface. The transform itself is
// only ever rescaled by the surface.
func (s *Session) applyZoom(z float64, focal Point) {
	z, clamped := s.opts.clampZoom(z)
	if clamped {
		Logger().Debug("polyplay: zoom clamped", "zoom", z)
	}
	prev := s.view.Zoom
	s.view.Zoom = z
	s.surface.ZoomToPoint(focal, z)
	s.metrics.recordZoom(z)
	if z != prev {
		s.emit(Event{Kind: EventZoomChanged, Zoom: z})
	}
}
