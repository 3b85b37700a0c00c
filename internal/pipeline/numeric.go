package pipeline

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// RefineNumericBoundaries splits sentences in which a number is directly
// followed by a sentence end. The number always stays with the clause before
// the split.
//   - digit, optional space, boundary punctuation: split after the punctuation
//   - digit, space, strong marker: split before the marker and close the
//     clause with the terminator
//
// Digits inside quotations are ignored.
func (r *Rules) RefineNumericBoundaries(sentences []string) []string {
	out := make([]string, 0, len(sentences))

	for _, s := range sentences {
		quoted := r.quoteSpans(s)
		start := 0

		for i := 0; i < len(s); {
			c, size := utf8.DecodeRuneInString(s[i:])
			i += size
			if !unicode.IsDigit(c) || insideSpan(quoted, i-size) {
				continue
			}

			at := skipSpace(s, i)
			if at < len(s) {
				if p, psize := utf8.DecodeRuneInString(s[at:]); r.boundary[p] {
					end := r.skipBoundary(s, at+psize)
					if strings.TrimSpace(s[end:]) != "" {
						out = append(out, strings.TrimSpace(s[start:end]))
						start = end
					}
					i = end
					continue
				}
			}
			if at > i && matchMarker(r.strong, s, at) != "" {
				out = append(out, r.terminate(s[start:i]))
				start = at
				i = at
			}
		}
		if rest := strings.TrimSpace(s[start:]); rest != "" {
			out = append(out, rest)
		}
	}
	return out
}
