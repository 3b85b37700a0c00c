package pipeline

import (
	"strings"
)

// Merge folds continuation fragments into the sentence before them. A
// sentence is a continuation when its first word is a weak connector or it
// has no more than MinWordsToMerge words. The previous sentence loses its
// trailing boundary punctuation so the merged sentence keeps only the
// punctuation of the fragment. The first sentence is never merged.
//
// A fragment made only of boundary glyphs is appended to the previous
// sentence as is, closing a run such as "?!" that Split cut apart.
//
// Cleanup replacements are applied to every sentence first.
func (r *Rules) Merge(sentences []string) []string {
	merged := make([]string, 0, len(sentences))

	for _, s := range sentences {
		if r.cleanup != nil {
			s = r.cleanup.Replace(s)
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		if len(merged) > 0 && strings.TrimFunc(s, r.isBoundary) == "" {
			merged[len(merged)-1] += s
			continue
		}
		if len(merged) > 0 && r.continues(s) {
			last := len(merged) - 1
			head := strings.TrimRightFunc(merged[last], r.isBoundary)
			if head = strings.TrimSpace(head); head != "" {
				s = head + " " + s
			}
			merged[last] = s
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

func (r *Rules) continues(s string) bool {
	words := strings.Fields(s)
	if len(words) <= r.minMerge {
		return true
	}
	return r.connectors[trimPunct(words[0])]
}
