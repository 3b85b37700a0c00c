package pipeline

import (
	"strings"
)

// SplitRunOns breaks a sentence wherever the run-on marker is immediately
// followed by a subordinator, as in "کہا ہے کہ". The clause ending in the
// marker is closed with the terminator and the subordinator opens the next
// sentence. Words inside quotations are never split.
func (r *Rules) SplitRunOns(sentences []string) []string {
	out := make([]string, 0, len(sentences))
	if r.runOn == "" || len(r.subordinators) == 0 {
		return append(out, sentences...)
	}

	for _, s := range sentences {
		words := wordSpans(s)
		quoted := r.quoteSpans(s)
		start := 0

		for k := 0; k+1 < len(words); k++ {
			w, next := words[k], words[k+1]
			if s[w[0]:w[1]] != r.runOn || !r.subordinators[trimPunct(s[next[0]:next[1]])] {
				continue
			}
			if insideSpan(quoted, w[0]) || insideSpan(quoted, next[0]) {
				continue
			}
			out = append(out, r.terminate(s[start:w[1]]))
			start = next[0]
		}
		if rest := strings.TrimSpace(s[start:]); rest != "" {
			out = append(out, rest)
		}
	}
	return out
}

// terminate trims clause and ends it with exactly the terminator.
func (r *Rules) terminate(clause string) string {
	clause = strings.TrimSpace(clause)
	return strings.TrimRightFunc(clause, r.isBoundary) + r.terminator
}
