package polyplay

// State is the interaction state of a session.
type State int

const (
	// StateIdle: no pointer-down binding for drawing, no drag in progress.
	StateIdle State = iota
	// StateDrawing: pointer-down places points.
	StateDrawing
	// StatePanning: a drag is in progress.
	StatePanning
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	case StatePanning:
		return "panning"
	default:
		return "unknown"
	}
}

// Cursor is the pointer cursor a host should show over the surface.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorMove
)

// PointerEvent is a pointer position in screen space, relative to the
// surface's top-left corner.
type PointerEvent struct {
	X, Y float64
}

// WheelEvent is a wheel step. DeltaY is negative when scrolling up
// (zoom in). X and Y locate the pointer in screen space.
type WheelEvent struct {
	DeltaY float64
	X, Y   float64
}

// State returns the current interaction state.
func (s *Session) State() State {
	switch {
	case s.view.Panning:
		return StatePanning
	case s.drawOn:
		return StateDrawing
	default:
		return StateIdle
	}
}

// DrawEnabled reports whether pointer-down places points.
func (s *Session) DrawEnabled() bool { return s.drawOn }

// PanEnabled reports whether pointer-down starts a drag.
func (s *Session) PanEnabled() bool { return s.panOn }

// WheelZoomEnabled reports whether wheel events zoom.
func (s *Session) WheelZoomEnabled() bool { return s.wheelOn }

// Cursor returns the cursor for the current mode.
func (s *Session) Cursor() Cursor {
	if s.panOn {
		return CursorMove
	}
	return CursorDefault
}

// EnableDraw binds pointer-down to point placement. Pan mode is disabled
// first: the two modes never share the pointer-down binding.
func (s *Session) EnableDraw() {
	if s.surface == nil || s.drawOn {
		return
	}
	if s.panOn {
		s.disablePan()
	}
	s.drawOn = true
	s.emit(Event{Kind: EventModeChanged, State: s.State()})
}

// DisableDraw unbinds point placement. Safe to call when not enabled.
func (s *Session) DisableDraw() {
	if !s.drawOn {
		return
	}
	s.drawOn = false
	s.emit(Event{Kind: EventModeChanged, State: s.State()})
}

// EnablePan binds pointer-down to the start of a drag. Draw mode is
// disabled first.
func (s *Session) EnablePan() {
	if s.surface == nil || s.panOn {
		return
	}
	s.drawOn = false
	s.panOn = true
	s.emit(Event{Kind: EventModeChanged, State: s.State()})
}

// DisablePan unbinds dragging, ending a drag in progress. Safe to call when
// not enabled.
func (s *Session) DisablePan() {
	if !s.panOn {
		return
	}
	s.disablePan()
	s.emit(Event{Kind: EventModeChanged, State: s.State()})
}

func (s *Session) disablePan() {
	s.endDrag()
	s.panOn = false
}

// EnableWheelZoom binds wheel events to zoom.
func (s *Session) EnableWheelZoom() {
	if s.surface == nil {
		return
	}
	s.wheelOn = true
}

// DisableWheelZoom unbinds wheel zoom. Safe to call when not enabled.
func (s *Session) DisableWheelZoom() {
	s.wheelOn = false
}

// PointerDown dispatches a pointer-down event to the enabled mode.
func (s *Session) PointerDown(ev PointerEvent) {
	if s.surface == nil {
		return
	}
	switch {
	case s.drawOn:
		s.PlacePoint(s.surface.SceneFromScreen(Point{X: ev.X, Y: ev.Y}))
	case s.panOn:
		s.view.LastX = ev.X
		s.view.LastY = ev.Y
		s.view.Panning = true
		Logger().Debug("polyplay: drag start", "x", ev.X, "y", ev.Y)
	}
}

// PointerMove translates the viewport while a drag is in progress.
// It is ignored otherwise.
func (s *Session) PointerMove(ev PointerEvent) {
	if s.surface == nil || !s.view.Panning {
		return
	}
	vpt := s.surface.ViewportTransform()
	dx := ev.X - s.view.LastX
	dy := ev.Y - s.view.LastY
	vpt[TranslateX] += dx
	vpt[TranslateY] += dy
	s.view.LastX = ev.X
	s.view.LastY = ev.Y
	s.surface.RequestRender()
	s.emit(Event{Kind: EventPanned, Offset: Point{X: dx, Y: dy}})
}

// PointerUp ends a drag in progress. It is ignored otherwise.
func (s *Session) PointerUp(PointerEvent) {
	if s.surface == nil {
		return
	}
	s.endDrag()
}

// endDrag commits the mutated transform and leaves the panning state.
func (s *Session) endDrag() {
	if !s.view.Panning {
		return
	}
	s.surface.SetViewportTransform(*s.surface.ViewportTransform())
	s.view.Panning = false
	Logger().Debug("polyplay: drag end", "x", s.view.LastX, "y", s.view.LastY)
}

// Wheel zooms for a wheel event when wheel zoom is enabled.
func (s *Session) Wheel(ev WheelEvent) {
	if s.surface == nil || !s.wheelOn {
		return
	}
	s.handleWheel(ev)
}
