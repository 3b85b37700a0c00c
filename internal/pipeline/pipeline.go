package pipeline

// Trace holds the output of every stage for one document.
type Trace struct {
	Normalized string
	Marked     string
	Protected  string
	Quotes     *Quotes

	Split      []string
	Restored   []string
	Merged     []string
	RunOnSplit []string
	Refined    []string
	Final      []string
}

// Run segments text into sentences.
func (r *Rules) Run(text string) []string {
	return r.Trace(text).Final
}

// Trace runs the cascade and keeps each intermediate result. The order of the
// stages is fixed: quotes must be protected before splitting and restored
// after it, and fragments are filtered only once run-ons have been split.
func (r *Rules) Trace(text string) Trace {
	var t Trace
	t.Normalized = r.Normalize(text)
	t.Marked = r.InsertBoundaries(t.Normalized)
	t.Protected, t.Quotes = r.Protect(t.Marked)
	t.Split = r.Split(t.Protected)

	t.Restored = make([]string, len(t.Split))
	for i, s := range t.Split {
		t.Restored[i] = t.Quotes.Restore(s)
	}

	t.Merged = r.Merge(t.Restored)
	t.RunOnSplit = r.SplitRunOns(t.Merged)
	t.Refined = r.RefineNumericBoundaries(t.RunOnSplit)
	t.Final = r.Filter(t.Refined)
	return t
}
