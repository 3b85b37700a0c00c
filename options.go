package urseg

import (
	"log/slog"
	"runtime"

	"github.com/jamesainslie/go-urseg/lexicon"
)

// Option configures a Segmenter.
type Option func(*config)

type config struct {
	lexicon     lexicon.Lexicon
	concurrency int
	logger      *slog.Logger
}

func defaultConfig() config {
	return config{
		lexicon:     lexicon.Default(),
		concurrency: runtime.NumCPU(),
		logger:      slog.Default(),
	}
}

// WithLexicon replaces the whole lexicon (default: lexicon.Default()).
// Options applied after it adjust the replacement.
func WithLexicon(l lexicon.Lexicon) Option {
	return func(c *config) {
		c.lexicon = l
	}
}

// WithBoundaryPunctuation sets the sentence-ending glyphs. The first glyph is
// the one inserted where the pipeline creates a boundary.
func WithBoundaryPunctuation(glyphs ...string) Option {
	return func(c *config) {
		c.lexicon.BoundaryPunctuation = clone(glyphs)
	}
}

// WithDiscourseMarkers sets the words that get a full stop inserted before them.
func WithDiscourseMarkers(markers ...string) Option {
	return func(c *config) {
		c.lexicon.DiscourseMarkers = clone(markers)
	}
}

// WithStrongMarkers sets the discourse markers that end a sentence after a number.
func WithStrongMarkers(markers ...string) Option {
	return func(c *config) {
		c.lexicon.StrongMarkers = clone(markers)
	}
}

// WithWeakConnectors sets the first words that merge a sentence into the previous one.
func WithWeakConnectors(words ...string) Option {
	return func(c *config) {
		c.lexicon.WeakConnectors = clone(words)
	}
}

// WithRunOnMarker sets the closing verb used to detect run-on sentences (default: ہے).
func WithRunOnMarker(word string) Option {
	return func(c *config) {
		c.lexicon.RunOnMarker = word
	}
}

// WithSubordinators sets the conjunctions that start a new sentence after the run-on marker.
func WithSubordinators(words ...string) Option {
	return func(c *config) {
		c.lexicon.Subordinators = clone(words)
	}
}

// WithMinWordsToKeep drops final sentences with n words or fewer (default: 2).
func WithMinWordsToKeep(n int) Option {
	return func(c *config) {
		c.lexicon.MinWordsToKeep = n
	}
}

// WithMinWordsToMerge merges sentences with n words or fewer into the
// previous sentence (default: 3).
func WithMinWordsToMerge(n int) Option {
	return func(c *config) {
		c.lexicon.MinWordsToMerge = n
	}
}

// WithQuotePairs sets the quotation delimiters whose contents never split.
func WithQuotePairs(pairs ...lexicon.QuotePair) Option {
	return func(c *config) {
		c.lexicon.QuotePairs = append([]lexicon.QuotePair(nil), pairs...)
	}
}

// WithConcurrency sets how many documents SegmentAll processes at once
// (default: runtime.NumCPU()).
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func clone(in []string) []string {
	return append([]string(nil), in...)
}
