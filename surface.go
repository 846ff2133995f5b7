package polyplay

// Surface is the rendering surface a Session drives. It owns shape
// lifetime, the viewport transform and the render loop; polyplay only
// refers to shapes through ShapeID handles.
//
// The canvas sub-package provides a gg-backed implementation.
type Surface interface {
	// Add adds a shape on top of all others and returns its handle, or
	// NoShape if the surface no longer accepts shapes.
	Add(s Shape) ShapeID

	// SetStyle replaces the style of a shape. It reports false if id does
	// not refer to a live shape.
	SetStyle(id ShapeID, style Style) bool

	// SendToBack moves a shape below all others.
	SendToBack(id ShapeID)

	// RemoveAll removes every shape.
	RemoveAll()

	// SetDimensions resizes the surface in screen pixels.
	SetDimensions(width, height int)

	// SceneFromScreen converts a pointer position in screen space to scene
	// space using the current viewport transform.
	SceneFromScreen(p Point) Point

	// ViewportTransform returns the live viewport transform. Mutations are
	// visible on the next render.
	ViewportTransform() *Transform

	// SetViewportTransform replaces the viewport transform.
	SetViewportTransform(t Transform)

	// ZoomToPoint rescales the viewport to factor, keeping the screen point
	// p fixed.
	ZoomToPoint(p Point, factor float64)

	// ViewportCenter returns the centre of the surface in screen space.
	ViewportCenter() Point

	// RequestRender schedules a redraw.
	RequestRender()

	// Dispose releases the surface. It must be safe to call more than once.
	Dispose()
}
