package polyplay

import "github.com/gogpu/gg"

// ShapeID is a non-owning handle to a shape held by a Surface.
// The zero value refers to no shape.
type ShapeID uint64

// NoShape is the zero ShapeID.
const NoShape ShapeID = 0

// ShapeKind identifies the geometry a Shape carries.
type ShapeKind int

const (
	// KindMarker is a filled circle marking a placed point.
	KindMarker ShapeKind = iota
	// KindSegment is a dashed line between two consecutive points.
	KindSegment
)

// String returns the kind name.
func (k ShapeKind) String() string {
	switch k {
	case KindMarker:
		return "marker"
	case KindSegment:
		return "segment"
	default:
		return "unknown"
	}
}

// Style holds the paint of a shape.
type Style struct {
	Fill        gg.RGBA
	Stroke      gg.RGBA
	StrokeWidth float64
	Dash        []float64
	// Opacity multiplies the alpha of Fill and Stroke. Zero means opaque.
	Opacity float64
}

// Alpha returns the effective opacity.
func (s Style) Alpha() float64 {
	if s.Opacity <= 0 || s.Opacity > 1 {
		return 1
	}
	return s.Opacity
}

// Shape is a drawable item in scene coordinates.
//
// Markers are positioned by their bounding box corner (Left, Top) so that
// the circle's centre lies on the placed point. Segments run From -> To.
type Shape struct {
	Kind   ShapeKind
	Left   float64
	Top    float64
	Radius float64
	From   Point
	To     Point
	Style  Style
}

// NewMarker returns a marker centred on p.
func NewMarker(p Point, radius float64, style Style) Shape {
	return Shape{
		Kind:   KindMarker,
		Left:   p.X - radius,
		Top:    p.Y - radius,
		Radius: radius,
		Style:  style,
	}
}

// NewSegment returns a segment from a to b.
func NewSegment(a, b Point, style Style) Shape {
	return Shape{
		Kind:  KindSegment,
		From:  a,
		To:    b,
		Style: style,
	}
}

// Center returns the centre of a marker, or the midpoint of a segment.
func (s Shape) Center() Point {
	if s.Kind == KindSegment {
		return s.From.Lerp(s.To, 0.5)
	}
	return Point{X: s.Left + s.Radius, Y: s.Top + s.Radius}
}
