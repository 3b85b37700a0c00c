// Package urseg splits Urdu prose into sentences with a deterministic rule
// cascade.
//
// # Quick Start
//
//	seg, err := urseg.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, s := range seg.Segment(text) {
//	    fmt.Println(s)
//	}
//
// # Pipeline
//
// Text is normalized, a full stop is inserted before discourse markers such
// as لیکن and مگر, quotations are shielded, and the result is cut at ۔ ? and !.
// Fragments that start with a weak connector or are very short are merged
// back, run-on clauses joined by ہے + کہ are split, numbers directly followed
// by a sentence end are separated, and leftover fragments are dropped.
//
// # Configuration
//
// All word lists and thresholds live in a lexicon.Lexicon. Replace it
// wholesale with WithLexicon or adjust single lists with the other options.
// New validates the result and reports problems as ErrInvalidConfig.
//
// # Thread Safety
//
// Segmenter is immutable after New and safe for concurrent use. SegmentAll
// processes many documents in parallel, bounded by WithConcurrency.
package urseg
