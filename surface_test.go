package polyplay

import "slices"

// zoomCall records one ZoomToPoint call.
type zoomCall struct {
	focal  Point
	factor float64
}

// fakeSurface is an in-memory Surface recording every call.
type fakeSurface struct {
	order  []ShapeID
	shapes map[ShapeID]*Shape
	next   ShapeID

	vpt           Transform
	width, height int

	renders  int
	setVPT   int
	zooms    []zoomCall
	disposed int

	// rejecting makes Add refuse shapes, like a closed canvas.
	rejecting bool
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		shapes: make(map[ShapeID]*Shape),
		vpt:    IdentityTransform(),
		width:  800,
		height: 600,
	}
}

func (f *fakeSurface) Add(s Shape) ShapeID {
	if f.rejecting {
		return NoShape
	}
	f.next++
	shape := s
	f.shapes[f.next] = &shape
	f.order = append(f.order, f.next)
	return f.next
}

func (f *fakeSurface) SetStyle(id ShapeID, style Style) bool {
	s, ok := f.shapes[id]
	if !ok {
		return false
	}
	s.Style = style
	return true
}

func (f *fakeSurface) SendToBack(id ShapeID) {
	i := slices.Index(f.order, id)
	if i < 0 {
		return
	}
	f.order = slices.Delete(f.order, i, i+1)
	f.order = slices.Insert(f.order, 0, id)
}

func (f *fakeSurface) RemoveAll() {
	f.order = nil
	clear(f.shapes)
}

func (f *fakeSurface) SetDimensions(w, h int) {
	f.width, f.height = w, h
}

func (f *fakeSurface) SceneFromScreen(p Point) Point {
	return f.vpt.Invert().Apply(p)
}

func (f *fakeSurface) ViewportTransform() *Transform {
	return &f.vpt
}

func (f *fakeSurface) SetViewportTransform(t Transform) {
	f.vpt = t
	f.setVPT++
}

func (f *fakeSurface) ZoomToPoint(p Point, factor float64) {
	f.zooms = append(f.zooms, zoomCall{focal: p, factor: factor})
	f.vpt = f.vpt.ZoomAt(p, factor)
}

func (f *fakeSurface) ViewportCenter() Point {
	return Pt(float64(f.width)/2, float64(f.height)/2)
}

func (f *fakeSurface) RequestRender() {
	f.renders++
}

func (f *fakeSurface) Dispose() {
	f.disposed++
}

// ofKind returns the shapes of kind k from bottom to top.
func (f *fakeSurface) ofKind(k ShapeKind) []Shape {
	var out []Shape
	for _, id := range f.order {
		if s := f.shapes[id]; s.Kind == k {
			out = append(out, *s)
		}
	}
	return out
}

// mounted returns a session mounted on a fresh fake surface. Call counters
// start after Mount.
func mounted(opts ...Option) (*Session, *fakeSurface) {
	s := NewSession(opts...)
	f := newFakeSurface()
	s.Mount(f)
	f.setVPT = 0
	return s, f
}
