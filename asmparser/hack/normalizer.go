// Package hack provides the implementation of the asmparser interfaces for
// the Hack architecture.
package hack

import (
	"strings"
	"unicode"
)

// Normalize turns raw multi-line source text into the ordered sequence of
// instruction and label lines the later passes operate on. Per line: every
// whitespace character is removed, then the text from the first "//" onward
// is cut, and lines that end up empty are dropped. Whitespace goes first so
// a comment marker split by spaces still counts as one. Dropped lines occupy
// no instruction address.
func Normalize(source string) []string {
	rawLines := strings.Split(source, "\n")
	lines := make([]string, 0, len(rawLines))
	for _, raw := range rawLines {
		line := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, raw)
		line, _, _ = strings.Cut(line, "//")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
