package polyplay

import (
	geom "github.com/peterstace/simplefeatures/geom"
)

// Outline returns the placed points as an open line string in scene
// coordinates, with consecutive repeats collapsed. It is empty while the
// sketch covers fewer than two distinct locations.
func (s *Session) Outline() geom.LineString {
	pts := s.vertices()
	if len(pts) < 2 {
		return geom.LineString{}
	}
	ls, err := geom.NewLineString(sequence(pts, false))
	if err != nil {
		Logger().Debug("polyplay: outline rejected", "err", err)
		return geom.LineString{}
	}
	return ls
}

// Polygon returns the sketch closed back to its first point. The second
// result is false when the sketch has fewer than three distinct vertices or
// its closed ring is not simple (it crosses or touches itself, or all
// vertices lie on one line).
func (s *Session) Polygon() (geom.Polygon, bool) {
	pts := s.vertices()
	if n := len(pts); n > 1 && pts[n-1] == pts[0] {
		pts = pts[:n-1]
	}
	if len(pts) < 3 {
		return geom.Polygon{}, false
	}
	ring, err := geom.NewLineString(sequence(pts, true))
	if err != nil {
		Logger().Debug("polyplay: ring rejected", "err", err)
		return geom.Polygon{}, false
	}
	poly, err := geom.NewPolygon([]geom.LineString{ring})
	if err != nil {
		Logger().Debug("polyplay: polygon rejected", "err", err)
		return geom.Polygon{}, false
	}
	return poly, true
}

// Perimeter returns the length of the closed sketch, or of the open outline
// when it cannot be closed.
func (s *Session) Perimeter() float64 {
	if poly, ok := s.Polygon(); ok {
		return poly.ExteriorRing().Length()
	}
	return s.Outline().Length()
}

// Area returns the area enclosed by the closed sketch, or 0 when it cannot
// be closed into a simple polygon.
func (s *Session) Area() float64 {
	poly, ok := s.Polygon()
	if !ok {
		return 0
	}
	return poly.Area()
}

// WKT returns the sketch as well-known text: a POLYGON when it can be
// closed, a POINT when every placed point is at one location, otherwise a
// LINESTRING (EMPTY before the first point).
func (s *Session) WKT() string {
	if poly, ok := s.Polygon(); ok {
		return poly.AsText()
	}
	if pts := s.vertices(); len(pts) == 1 {
		pt, err := geom.NewPoint(geom.Coordinates{XY: geom.XY{X: pts[0].X, Y: pts[0].Y}})
		if err == nil {
			return pt.AsText()
		}
	}
	return s.Outline().AsText()
}

// vertices returns the placed points with consecutive repeats removed.
func (s *Session) vertices() []Point {
	out := make([]Point, 0, len(s.tracker.points))
	for _, p := range s.tracker.points {
		if n := len(out); n > 0 && out[n-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}

// sequence builds an XY coordinate sequence of pts, optionally repeating
// the first point at the end.
func sequence(pts []Point, closed bool) geom.Sequence {
	coords := make([]float64, 0, (len(pts)+1)*2)
	for _, p := range pts {
		coords = append(coords, p.X, p.Y)
	}
	if closed {
		coords = append(coords, pts[0].X, pts[0].Y)
	}
	return geom.NewSequence(coords, geom.DimXY)
}
