package renderer

import "io"

// Renderer defines the interface for writing encoded machine words in
// different formats.
type Renderer interface {
	// Render writes the words in the desired format to the provided writer.
	Render(words []uint16, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "text").
	Format() string
}
