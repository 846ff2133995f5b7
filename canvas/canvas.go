// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/polyplay"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("canvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("canvas: invalid dimensions")

	// ErrFontLoad is returned when the status line font cannot be loaded.
	ErrFontLoad = errors.New("canvas: font load failed")
)

// DefaultBackground is the color behind the workspace.
var DefaultBackground = gg.Hex("#f3f4f6")

// workspace is the fixed backdrop rectangle in scene coordinates.
type workspace struct {
	x, y, w, h float64
	fill       gg.RGBA
}

// Canvas is a polyplay.Surface drawing into a gg.Context.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	ctx    *gg.Context
	width  int
	height int

	order  []polyplay.ShapeID // bottom to top
	shapes map[polyplay.ShapeID]*polyplay.Shape
	nextID polyplay.ShapeID

	vpt polyplay.Transform

	background gg.RGBA
	workspace  *workspace
	font       *text.FontSource
	face       text.Face
	status     string

	dirty  bool
	closed bool
}

var _ polyplay.Surface = (*Canvas)(nil)

// New creates a Canvas of the given size in pixels with an identity
// viewport.
//
// Returns error if dimensions are invalid or the status font cannot be loaded.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		ctx:        gg.NewContext(width, height),
		width:      width,
		height:     height,
		shapes:     make(map[polyplay.ShapeID]*polyplay.Shape),
		vpt:        polyplay.IdentityTransform(),
		background: o.background,
		dirty:      true, // first Render draws the background
	}

	if o.workspaceW > 0 && o.workspaceH > 0 {
		c.workspace = &workspace{
			x:    float64(width)/2 - o.workspaceW/2,
			y:    float64(height)/2 - o.workspaceH/2,
			w:    o.workspaceW,
			h:    o.workspaceH,
			fill: o.workspaceFill,
		}
	}

	if o.statusSize > 0 {
		src, err := loadStatusFont()
		if err != nil {
			_ = c.ctx.Close()
			return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
		}
		c.font = src
		c.face = src.Face(o.statusSize)
	}

	return c, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(width, height int, opts ...Option) *Canvas {
	c, err := New(width, height, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Context returns the gg drawing context, or nil if the canvas is closed.
func (c *Canvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.ctx
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// IsDirty reports whether the canvas has changes not yet rendered.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Closed reports whether Close or Dispose has been called.
func (c *Canvas) Closed() bool {
	return c.closed
}

// SetStatus sets the status line drawn in the bottom-left corner when the
// canvas was created WithStatusLine.
func (c *Canvas) SetStatus(s string) {
	if c.status == s {
		return
	}
	c.status = s
	c.dirty = true
}

// Add implements polyplay.Surface.
func (c *Canvas) Add(s polyplay.Shape) polyplay.ShapeID {
	if c.closed {
		return polyplay.NoShape
	}
	c.nextID++
	id := c.nextID
	shape := s
	c.shapes[id] = &shape
	c.order = append(c.order, id)
	c.dirty = true
	return id
}

// SetStyle implements polyplay.Surface.
func (c *Canvas) SetStyle(id polyplay.ShapeID, style polyplay.Style) bool {
	s, ok := c.shapes[id]
	if !ok {
		return false
	}
	s.Style = style
	c.dirty = true
	return true
}

// SendToBack implements polyplay.Surface.
func (c *Canvas) SendToBack(id polyplay.ShapeID) {
	i := slices.Index(c.order, id)
	if i <= 0 {
		return
	}
	copy(c.order[1:i+1], c.order[:i])
	c.order[0] = id
	c.dirty = true
}

// RemoveAll implements polyplay.Surface. The workspace backdrop is not a
// shape and stays.
func (c *Canvas) RemoveAll() {
	if len(c.order) == 0 {
		return
	}
	c.order = c.order[:0]
	clear(c.shapes)
	c.dirty = true
}

// Shape returns a copy of the shape with the given handle.
func (c *Canvas) Shape(id polyplay.ShapeID) (polyplay.Shape, bool) {
	s, ok := c.shapes[id]
	if !ok {
		return polyplay.Shape{}, false
	}
	return *s, true
}

// Shapes returns copies of all shapes from bottom to top.
func (c *Canvas) Shapes() []polyplay.Shape {
	out := make([]polyplay.Shape, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.shapes[id])
	}
	return out
}

// IDs returns the shape handles from bottom to top.
func (c *Canvas) IDs() []polyplay.ShapeID {
	return slices.Clone(c.order)
}

// Len returns the number of shapes.
func (c *Canvas) Len() int {
	return len(c.order)
}

// SetDimensions implements polyplay.Surface. Invalid sizes are ignored.
func (c *Canvas) SetDimensions(width, height int) {
	if err := c.Resize(width, height); err != nil {
		polyplay.Logger().Warn("canvas: resize ignored", "err", err)
	}
}

// Resize changes canvas dimensions. The viewport transform is kept.
//
// Returns error if dimensions are invalid or canvas is closed.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	// No-op if dimensions haven't changed
	if c.width == width && c.height == height {
		return nil
	}

	if err := c.ctx.Resize(width, height); err != nil {
		return fmt.Errorf("canvas: context resize failed: %w", err)
	}

	c.width = width
	c.height = height
	c.dirty = true
	return nil
}

// SceneFromScreen implements polyplay.Surface.
func (c *Canvas) SceneFromScreen(p polyplay.Point) polyplay.Point {
	return c.vpt.Invert().Apply(p)
}

// ScreenFromScene maps a scene point to screen space.
func (c *Canvas) ScreenFromScene(p polyplay.Point) polyplay.Point {
	return c.vpt.Apply(p)
}

// ViewportTransform implements polyplay.Surface.
func (c *Canvas) ViewportTransform() *polyplay.Transform {
	return &c.vpt
}

// SetViewportTransform implements polyplay.Surface.
func (c *Canvas) SetViewportTransform(t polyplay.Transform) {
	c.vpt = t
	c.dirty = true
}

// ZoomToPoint implements polyplay.Surface.
func (c *Canvas) ZoomToPoint(p polyplay.Point, factor float64) {
	c.SetViewportTransform(c.vpt.ZoomAt(p, factor))
}

// ViewportCenter implements polyplay.Surface.
func (c *Canvas) ViewportCenter() polyplay.Point {
	return polyplay.Pt(float64(c.width)/2, float64(c.height)/2)
}

// RequestRender implements polyplay.Surface.
func (c *Canvas) RequestRender() {
	c.dirty = true
}

// Dispose implements polyplay.Surface by closing the canvas.
func (c *Canvas) Dispose() {
	_ = c.Close()
}

// Close releases all resources associated with the Canvas.
// After Close, the Canvas should not be used.
// Close is idempotent - multiple calls are safe.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	c.order = nil
	c.shapes = nil
	c.face = nil

	var errs []error
	if c.font != nil {
		errs = append(errs, c.font.Close())
		c.font = nil
	}
	if c.ctx != nil {
		errs = append(errs, c.ctx.Close())
		c.ctx = nil
	}
	return errors.Join(errs...)
}
