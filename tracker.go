package polyplay

// tracker is the point sequence: the ordered placed points plus handles to
// the current marker and segment. It never owns shapes; the surface does.
type tracker struct {
	points         []Point
	currentMarker  ShapeID
	currentSegment ShapeID
}

// place adds p to the sequence and draws its marker and, when p is not the
// first point, the segment from the previous point. It reports false and
// leaves the sequence unchanged if the surface refuses the marker.
func (t *tracker) place(s Surface, o *options, p Point) bool {
	marker := s.Add(NewMarker(p, o.markerRadius, o.markerStyle(true)))
	if marker == NoShape {
		return false
	}

	if n := len(t.points); n > 0 {
		last := t.points[n-1]

		if t.currentMarker != NoShape {
			s.SetStyle(t.currentMarker, o.markerStyle(false))
		}

		seg := NewSegment(last, p, o.segmentStyle(true))

		if t.currentSegment != NoShape {
			s.SetStyle(t.currentSegment, o.segmentStyle(false))
		}

		id := s.Add(seg)
		// Segments sit below markers.
		s.SendToBack(id)
		t.currentSegment = id
	}

	t.currentMarker = marker
	t.points = append(t.points, p)
	return true
}

// segments returns the number of segments drawn for the sequence.
func (t *tracker) segments() int {
	return max(0, len(t.points)-1)
}

// reset empties the sequence and drops the handles.
func (t *tracker) reset() {
	t.points = t.points[:0]
	t.currentMarker = NoShape
	t.currentSegment = NoShape
}
