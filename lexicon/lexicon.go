// Package lexicon holds the literal word lists and thresholds that drive Urdu
// sentence segmentation.
//
// Every rule of the segmentation cascade reads its vocabulary from a Lexicon,
// so alternative lists can be substituted in tests or tuned for a different
// register of Urdu without touching the pipeline.
package lexicon

import (
	"golang.org/x/text/unicode/norm"
)

// QuotePair is an opening and closing quote glyph sequence.
type QuotePair struct {
	Open  string `yaml:"open" validate:"required"`
	Close string `yaml:"close" validate:"required"`
}

// Replacement rewrites one literal into another.
type Replacement struct {
	From string `yaml:"from" validate:"required"`
	To   string `yaml:"to"`
}

// Lexicon is the configuration of the segmentation cascade.
type Lexicon struct {
	// BoundaryPunctuation lists the single-rune glyphs that end a sentence.
	// The first entry is the terminator inserted by the pipeline.
	BoundaryPunctuation []string `yaml:"boundary_punctuation" validate:"required,min=1,dive,required"`

	// DiscourseMarkers open a new clause and get a terminator inserted
	// before them. Matched longest first.
	DiscourseMarkers []string `yaml:"discourse_markers" validate:"dive,required"`

	// StrongMarkers are the discourse markers that end a sentence when they
	// directly follow a number.
	StrongMarkers []string `yaml:"strong_markers" validate:"dive,required"`

	// WeakConnectors mark a sentence as the continuation of the previous one
	// when they are its first word.
	WeakConnectors []string `yaml:"weak_connectors" validate:"dive,required"`

	// RunOnMarker is the closing verb after which a subordinator starts a
	// new sentence.
	RunOnMarker string `yaml:"run_on_marker"`

	Subordinators []string `yaml:"subordinators" validate:"dive,required"`

	// MinWordsToKeep drops sentences with this many words or fewer.
	MinWordsToKeep int `yaml:"min_words_to_keep" validate:"gte=0"`

	// MinWordsToMerge merges sentences with this many words or fewer into
	// their predecessor.
	MinWordsToMerge int `yaml:"min_words_to_merge" validate:"gte=0"`

	QuotePairs []QuotePair `yaml:"quote_pairs" validate:"dive"`

	// Cleanups are applied to every sentence before fragments are merged.
	Cleanups []Replacement `yaml:"cleanups" validate:"dive"`
}

// Default returns the lexicon for standard written Urdu.
func Default() Lexicon {
	return Lexicon{
		BoundaryPunctuation: []string{"۔", "?", "!"},
		DiscourseMarkers: []string{
			"لیکن", "مگر", "اب", "آج", "ساتھ ہی", "دوسری جانب",
			"چنانچہ", "آخرکار", "اس موقعے پر", "لہٰذا",
		},
		StrongMarkers:   []string{"لیکن", "مگر", "اب", "آج"},
		WeakConnectors:  []string{"اور", "تو", "اسی", "بلکہ"},
		RunOnMarker:     "ہے",
		Subordinators:   []string{"کہ", "جسے", "چونکہ", "اگرچہ"},
		MinWordsToKeep:  2,
		MinWordsToMerge: 3,
		QuotePairs: []QuotePair{
			{Open: "‘‘", Close: "’’"},
			{Open: `"`, Close: `"`},
		},
		Cleanups: []Replacement{
			{From: "،۔", To: "۔"},
		},
	}
}

// Terminator returns the glyph inserted where the pipeline creates a
// sentence end.
func (l *Lexicon) Terminator() string {
	if len(l.BoundaryPunctuation) == 0 {
		return ""
	}
	return l.BoundaryPunctuation[0]
}

// Normalized returns a copy of l with every literal in Unicode NFC, so that
// literals compare equal to normalized text regardless of how they were typed.
func (l Lexicon) Normalized() Lexicon {
	out := l
	out.BoundaryPunctuation = nfcAll(l.BoundaryPunctuation)
	out.DiscourseMarkers = nfcAll(l.DiscourseMarkers)
	out.StrongMarkers = nfcAll(l.StrongMarkers)
	out.WeakConnectors = nfcAll(l.WeakConnectors)
	out.RunOnMarker = norm.NFC.String(l.RunOnMarker)
	out.Subordinators = nfcAll(l.Subordinators)

	out.QuotePairs = make([]QuotePair, len(l.QuotePairs))
	for i, p := range l.QuotePairs {
		out.QuotePairs[i] = QuotePair{Open: norm.NFC.String(p.Open), Close: norm.NFC.String(p.Close)}
	}
	out.Cleanups = make([]Replacement, len(l.Cleanups))
	for i, r := range l.Cleanups {
		out.Cleanups[i] = Replacement{From: norm.NFC.String(r.From), To: norm.NFC.String(r.To)}
	}
	return out
}

func nfcAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = norm.NFC.String(s)
	}
	return out
}
