package pipeline

// Filter drops sentences with MinWordsToKeep words or fewer.
func (r *Rules) Filter(sentences []string) []string {
	kept := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if wordCount(s) > r.minKeep {
			kept = append(kept, s)
		}
	}
	return kept
}
