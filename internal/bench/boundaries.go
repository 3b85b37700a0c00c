package bench

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Skeleton reduces text to its letters and digits. Segmentation only touches
// whitespace and punctuation, so the skeleton of a document and of its
// segmented sentences line up.
func Skeleton(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFC.String(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Boundaries returns, for each sentence found in text, the rune offset in the
// skeleton of text at which that sentence ends. Sentences are located in
// order; a sentence whose skeleton cannot be found after the previous one is
// skipped, as are sentences without letters or digits.
func Boundaries(text string, sentences []string) []int {
	skel := Skeleton(text)
	var boundaries []int
	pos := 0   // byte offset into skel
	runes := 0 // rune offset of pos
	for _, s := range sentences {
		needle := Skeleton(s)
		if needle == "" {
			continue
		}
		idx := strings.Index(skel[pos:], needle)
		if idx < 0 {
			continue
		}
		end := pos + idx + len(needle)
		runes += utf8.RuneCountInString(skel[pos:end])
		pos = end
		boundaries = append(boundaries, runes)
	}
	return boundaries
}
