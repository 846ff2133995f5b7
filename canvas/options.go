// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import "github.com/gogpu/gg"

// Option configures a Canvas during creation.
type Option func(*options)

type options struct {
	background    gg.RGBA
	workspaceW    float64
	workspaceH    float64
	workspaceFill gg.RGBA
	statusSize    float64
}

func defaultOptions() options {
	return options{
		background:    DefaultBackground,
		workspaceFill: gg.White,
	}
}

// WithBackground sets the color behind the workspace.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithWorkspace draws a fixed w x h backdrop rectangle, centred in the
// initial view. The backdrop pans and zooms with the scene but is not a
// shape: RemoveAll keeps it.
func WithWorkspace(w, h float64, fill gg.RGBA) Option {
	return func(o *options) {
		o.workspaceW = w
		o.workspaceH = h
		o.workspaceFill = fill
	}
}

// WithStatusLine enables a status line in the bottom-left corner, drawn
// with Go Regular at the given size in pixels. See Canvas.SetStatus.
func WithStatusLine(size float64) Option {
	return func(o *options) {
		o.statusSize = size
	}
}
