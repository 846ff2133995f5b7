// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/polyplay"
)

// statusMargin is the distance of the status line from the canvas edges.
const statusMargin = 8

// Render redraws the canvas if it is dirty.
//
// Shapes are drawn bottom to top under the viewport transform; the status
// line is drawn in screen space on top.
//
// Returns ErrCanvasClosed if the canvas is closed.
func (c *Canvas) Render() error {
	if c.closed {
		return ErrCanvasClosed
	}
	if !c.dirty {
		return nil
	}

	dc := c.ctx
	dc.Identity()
	dc.ClearWithColor(c.background)

	dc.Push()
	dc.SetTransform(c.vpt.Matrix())
	if ws := c.workspace; ws != nil {
		dc.SetRGBA(ws.fill.R, ws.fill.G, ws.fill.B, ws.fill.A)
		dc.DrawRectangle(ws.x, ws.y, ws.w, ws.h)
		if err := dc.Fill(); err != nil {
			dc.Pop()
			return err
		}
	}
	for _, id := range c.order {
		if err := drawShape(dc, c.shapes[id]); err != nil {
			dc.Pop()
			return err
		}
	}
	dc.Pop()

	if c.face != nil && c.status != "" {
		dc.SetFont(c.face)
		dc.SetRGB(0.22, 0.25, 0.32)
		dc.DrawStringAnchored(c.status, statusMargin, float64(c.height)-statusMargin, 0, 0)
	}

	c.dirty = false
	return nil
}

// drawShape draws one shape with the current transform.
func drawShape(dc *gg.Context, s *polyplay.Shape) error {
	alpha := s.Style.Alpha()
	switch s.Kind {
	case polyplay.KindMarker:
		f := s.Style.Fill
		dc.SetRGBA(f.R, f.G, f.B, f.A*alpha)
		center := s.Center()
		dc.DrawCircle(center.X, center.Y, s.Radius)
		return dc.Fill()
	case polyplay.KindSegment:
		st := s.Style.Stroke
		dc.SetRGBA(st.R, st.G, st.B, st.A*alpha)
		dc.SetLineWidth(s.Style.StrokeWidth)
		dc.SetDash(s.Style.Dash...)
		dc.DrawLine(s.From.X, s.From.Y, s.To.X, s.To.Y)
		err := dc.Stroke()
		dc.ClearDash()
		return err
	}
	return nil
}

// Image renders if needed and returns the canvas content.
// Returns nil if the canvas is closed.
func (c *Canvas) Image() image.Image {
	if c.Render() != nil {
		return nil
	}
	return c.ctx.Image()
}

// EncodePNG renders if needed and writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.Render(); err != nil {
		return err
	}
	return c.ctx.EncodePNG(w)
}

// SavePNG renders if needed and saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if err := c.Render(); err != nil {
		return err
	}
	return c.ctx.SavePNG(path)
}

// Pixel returns the rendered color at (x, y) in screen space.
func (c *Canvas) Pixel(x, y int) gg.RGBA {
	if c.Render() != nil {
		return gg.RGBA{}
	}
	return c.ctx.ResizeTarget().GetPixel(x, y)
}
