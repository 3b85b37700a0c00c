// Package pipeline implements the rule cascade that turns Urdu prose into
// sentences.
//
// Every stage is a pure function of its input and the compiled Rules. The
// stages are exported individually so each can be exercised in isolation;
// Run composes them in the only order that is correct.
package pipeline

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jamesainslie/go-urseg/lexicon"
)

// Rules is the compiled, immutable form of a lexicon. It is safe for
// concurrent use.
type Rules struct {
	boundary      map[rune]bool
	terminator    string
	markers       []string
	strong        []string
	connectors    map[string]bool
	runOn         string
	subordinators map[string]bool
	minKeep       int
	minMerge      int
	quotes        []lexicon.QuotePair
	cleanup       *strings.Replacer
}

// Compile builds Rules from a lexicon. The lexicon is expected to have passed
// Validate; Compile itself never fails.
func Compile(lex lexicon.Lexicon) *Rules {
	lex = lex.Normalized()

	r := &Rules{
		boundary:      make(map[rune]bool, len(lex.BoundaryPunctuation)),
		terminator:    lex.Terminator(),
		markers:       longestFirst(lex.DiscourseMarkers),
		strong:        longestFirst(lex.StrongMarkers),
		connectors:    setOf(lex.WeakConnectors),
		runOn:         lex.RunOnMarker,
		subordinators: setOf(lex.Subordinators),
		minKeep:       lex.MinWordsToKeep,
		minMerge:      lex.MinWordsToMerge,
		quotes:        lex.QuotePairs,
	}
	for _, p := range lex.BoundaryPunctuation {
		if c, _ := utf8.DecodeRuneInString(p); c != utf8.RuneError {
			r.boundary[c] = true
		}
	}
	if len(lex.Cleanups) > 0 {
		pairs := make([]string, 0, 2*len(lex.Cleanups))
		for _, c := range lex.Cleanups {
			pairs = append(pairs, c.From, c.To)
		}
		r.cleanup = strings.NewReplacer(pairs...)
	}
	return r
}

func (r *Rules) isBoundary(c rune) bool {
	return r.boundary[c]
}

// matchMarker returns the first literal in markers (sorted longest first)
// that starts at text[at:] and ends on a word boundary.
func matchMarker(markers []string, text string, at int) string {
	rest := text[at:]
	for _, m := range markers {
		if strings.HasPrefix(rest, m) && wordEndsAt(text, at+len(m)) {
			return m
		}
	}
	return ""
}

func wordEndsAt(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	c, _ := utf8.DecodeRuneInString(text[i:])
	return unicode.IsSpace(c) || unicode.IsPunct(c) || unicode.IsSymbol(c)
}

// skipSpace returns the index of the first non-space rune at or after i.
func skipSpace(text string, i int) int {
	for i < len(text) {
		c, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsSpace(c) {
			break
		}
		i += size
	}
	return i
}

// wordSpans returns the byte ranges of the whitespace-delimited words of s.
func wordSpans(s string) [][2]int {
	var spans [][2]int
	start := -1
	for i, c := range s {
		if unicode.IsSpace(c) {
			if start >= 0 {
				spans = append(spans, [2]int{start, i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, [2]int{start, len(s)})
	}
	return spans
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func trimPunct(word string) string {
	return strings.TrimRightFunc(word, unicode.IsPunct)
}

func longestFirst(in []string) []string {
	out := append([]string(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}

func setOf(in []string) map[string]bool {
	set := make(map[string]bool, len(in))
	for _, s := range in {
		set[s] = true
	}
	return set
}
