package polyplay

import "github.com/gogpu/gg"

// Point is a 2D position. Depending on context it is either in scene
// coordinates (placed points) or screen coordinates (pointer positions,
// focal points).
type Point = gg.Point

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return gg.Pt(x, y)
}
