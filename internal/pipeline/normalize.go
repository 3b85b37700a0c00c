package pipeline

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	urduComma    = '،'
	urduFullStop = '۔'
)

var quoteGlyphs = strings.NewReplacer("''", "’’", "``", "‘‘")

// Normalize canonicalizes whitespace, commas and ASCII quote pairs.
//   - Unicode NFC
//   - whitespace runs collapse to one space, ends trimmed
//   - ',' becomes '،'
//   - '' becomes ’’ and `` becomes ‘‘
//   - no whitespace before '،' or '۔'
//
// Normalize is idempotent.
func (r *Rules) Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = norm.NFC.String(text)

	var b strings.Builder
	b.Grow(len(text))
	pendingSpace := false

	for _, c := range text {
		if unicode.IsSpace(c) {
			// Leading whitespace never produces a separator.
			if b.Len() > 0 {
				pendingSpace = true
			}
			continue
		}
		if c == ',' {
			c = urduComma
		}
		if pendingSpace && c != urduComma && c != urduFullStop {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(c)
	}

	return quoteGlyphs.Replace(b.String())
}
