package pipeline

import (
	"strings"
	"unicode/utf8"
)

// Split cuts text after every boundary glyph. The glyph stays with the
// sentence it ends, so a run such as "?!" yields a glyph-only fragment that
// Merge reattaches. Text after the last boundary becomes a final sentence of
// its own. Sentences are trimmed and blank ones dropped.
func (r *Rules) Split(text string) []string {
	var sentences []string
	start := 0

	for i := 0; i < len(text); {
		c, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if !r.boundary[c] {
			continue
		}
		if s := strings.TrimSpace(text[start:i]); s != "" {
			sentences = append(sentences, s)
		}
		start = i
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// skipBoundary returns the index just past the run of boundary punctuation
// starting at i.
func (r *Rules) skipBoundary(text string, i int) int {
	for i < len(text) {
		c, size := utf8.DecodeRuneInString(text[i:])
		if !r.boundary[c] {
			break
		}
		i += size
	}
	return i
}
