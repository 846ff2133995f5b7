package polyplay

// EventKind identifies a session change.
type EventKind int

const (
	// EventPointPlaced: Point holds the placed scene point.
	EventPointPlaced EventKind = iota
	// EventCleared: the sequence was emptied.
	EventCleared
	// EventZoomChanged: Zoom holds the new factor.
	EventZoomChanged
	// EventModeChanged: State holds the state after the change.
	EventModeChanged
	// EventPanned: Offset holds the translation added by one pointer move.
	EventPanned
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventPointPlaced:
		return "point-placed"
	case EventCleared:
		return "cleared"
	case EventZoomChanged:
		return "zoom-changed"
	case EventModeChanged:
		return "mode-changed"
	case EventPanned:
		return "panned"
	default:
		return "unknown"
	}
}

// Event describes a change observed by subscribers.
type Event struct {
	Kind   EventKind
	Point  Point
	Zoom   float64
	State  State
	Offset Point
}

type subscriber struct {
	id int
	fn func(Event)
}

// Subscribe registers fn to be called synchronously after every session
// change, in registration order. The returned function removes the
// subscription; calling it more than once is harmless.
func (s *Session) Subscribe(fn func(Event)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Session) emit(ev Event) {
	for _, sub := range s.subs {
		sub.fn(ev)
	}
}
