package pipeline

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// InsertBoundaries writes the terminator in front of every discourse marker
// that follows whitespace, unless the text before that whitespace already
// ends in boundary punctuation or a comma. Markers at the very start of the
// text are left alone, as are markers that are only a prefix of a longer word.
func (r *Rules) InsertBoundaries(text string) string {
	if len(r.markers) == 0 || text == "" {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(r.terminator)*4)
	prev := utf8.RuneError

	for i := 0; i < len(text); {
		c, size := utf8.DecodeRuneInString(text[i:])
		if i > 0 && unicode.IsSpace(c) {
			at := skipSpace(text, i)
			if m := matchMarker(r.markers, text, at); m != "" {
				if !r.endsClause(prev) {
					b.WriteString(r.terminator)
				}
				end := at + len(m)
				b.WriteString(text[i:end])
				prev, _ = utf8.DecodeLastRuneInString(m)
				i = end
				continue
			}
		}
		b.WriteString(text[i : i+size])
		prev = c
		i += size
	}
	return b.String()
}

func (r *Rules) endsClause(c rune) bool {
	return r.boundary[c] || c == urduComma || c == ','
}
