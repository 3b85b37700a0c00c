package pipeline

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Quotes maps the placeholders of one Protect call back to the quoted text
// they replaced.
//
// A placeholder is a sentinel rune, the span index and the sentinel again.
// The sentinel is a private-use rune that does not occur anywhere in the
// protected text, so placeholders cannot collide with input.
type Quotes struct {
	sentinel rune
	spans    []string
	restorer *strings.Replacer
}

// Len returns the number of protected spans.
func (q *Quotes) Len() int {
	if q == nil {
		return 0
	}
	return len(q.spans)
}

// Restore replaces every placeholder in s with its original quoted span.
func (q *Quotes) Restore(s string) string {
	if q == nil || q.restorer == nil {
		return s
	}
	return q.restorer.Replace(s)
}

// leaks reports whether s still holds placeholder text.
func (q *Quotes) leaks(s string) bool {
	if q == nil || len(q.spans) == 0 {
		return false
	}
	return strings.ContainsRune(s, q.sentinel)
}

func (q *Quotes) placeholder(i int) string {
	s := string(q.sentinel)
	return s + strconv.Itoa(i) + s
}

// Protect replaces every quoted span with a placeholder so that punctuation
// inside quotations cannot end a sentence. An opening quote without a closer
// stays in place as ordinary text.
func (r *Rules) Protect(text string) (string, *Quotes) {
	spans := r.quoteSpans(text)
	if len(spans) == 0 {
		return text, &Quotes{}
	}
	sentinel, ok := pickSentinel(text)
	if !ok {
		return text, &Quotes{}
	}

	q := &Quotes{sentinel: sentinel, spans: make([]string, 0, len(spans))}
	pairs := make([]string, 0, 2*len(spans))

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for i, sp := range spans {
		quoted := text[sp[0]:sp[1]]
		ph := q.placeholder(i)
		q.spans = append(q.spans, quoted)
		pairs = append(pairs, ph, quoted)

		b.WriteString(text[last:sp[0]])
		b.WriteString(ph)
		last = sp[1]
	}
	b.WriteString(text[last:])

	q.restorer = strings.NewReplacer(pairs...)
	return b.String(), q
}

// quoteSpans finds quoted spans left to right. At each position the pairs are
// tried in lexicon order; the closer is the nearest one after the opener and,
// when the same opener occurs again before it, the innermost opener wins.
func (r *Rules) quoteSpans(text string) [][2]int {
	if len(r.quotes) == 0 {
		return nil
	}

	var spans [][2]int
	for i := 0; i < len(text); {
		matched := false
		for _, p := range r.quotes {
			if !strings.HasPrefix(text[i:], p.Open) {
				continue
			}
			bodyStart := i + len(p.Open)
			k := strings.Index(text[bodyStart:], p.Close)
			if k < 0 {
				continue
			}
			closeAt := bodyStart + k
			start := i
			if p.Open != p.Close {
				if inner := strings.LastIndex(text[bodyStart:closeAt], p.Open); inner >= 0 {
					start = bodyStart + inner
				}
			}
			end := closeAt + len(p.Close)
			spans = append(spans, [2]int{start, end})
			i = end
			matched = true
			break
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(text[i:])
			i += size
		}
	}
	return spans
}

func insideSpan(spans [][2]int, i int) bool {
	for _, sp := range spans {
		if i >= sp[0] && i < sp[1] {
			return true
		}
	}
	return false
}

var sentinelRanges = [][2]rune{
	{0xE000, 0xF8FF},
	{0xF0000, 0xFFFFD},
	{0x100000, 0x10FFFD},
}

// pickSentinel returns the first private-use rune absent from text.
func pickSentinel(text string) (rune, bool) {
	used := make(map[rune]bool)
	for _, c := range text {
		for _, rg := range sentinelRanges {
			if c >= rg[0] && c <= rg[1] {
				used[c] = true
			}
		}
	}
	for _, rg := range sentinelRanges {
		for c := rg[0]; c <= rg[1]; c++ {
			if !used[c] {
				return c, true
			}
		}
	}
	return 0, false
}
