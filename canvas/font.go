// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// loadStatusFont parses the embedded Go Regular font.
func loadStatusFont() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
}
