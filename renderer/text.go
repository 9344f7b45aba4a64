// Package renderer provides a way to render encoded machine words in
// different formats.
package renderer

import (
	"fmt"
	"io"
	"strings"
)

// TextRenderer writes each word as a fixed-width 16-digit binary line, the
// format machine ROM loaders consume.
type TextRenderer struct{}

// NewTextRenderer creates a new instance of TextRenderer.
func NewTextRenderer() Renderer {
	return &TextRenderer{}
}

// Render writes one binary line per word in program order.
func (r *TextRenderer) Render(words []uint16, output io.Writer) error {
	var out strings.Builder
	for _, word := range words {
		fmt.Fprintf(&out, "%016b\n", word)
	}
	_, err := output.Write([]byte(out.String()))
	return err
}

// Format returns the format type.
func (r *TextRenderer) Format() string {
	return "text"
}
