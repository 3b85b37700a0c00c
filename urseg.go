package urseg

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jamesainslie/go-urseg/internal/pipeline"
	"github.com/jamesainslie/go-urseg/lexicon"
)

// Segmenter splits Urdu text into sentences.
// It is safe for concurrent use.
type Segmenter struct {
	rules       *pipeline.Rules
	lexicon     lexicon.Lexicon
	concurrency int
	logger      *slog.Logger
}

// Trace is the output of every pipeline stage for one document, in the order
// the stages run. Split still holds the placeholders that hide quoted spans;
// Restored is the same list with the quotations put back.
type Trace struct {
	Normalized string
	Marked     string
	Split      []string
	Restored   []string
	Merged     []string
	RunOnSplit []string
	Refined    []string
	Sentences  []string
}

// New creates a Segmenter. Without options it uses lexicon.Default().
func New(opts ...Option) (*Segmenter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	lex := cfg.lexicon.Normalized()
	if err := lex.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg.logger.Debug("segmenter ready",
		"boundary_punctuation", len(lex.BoundaryPunctuation),
		"discourse_markers", len(lex.DiscourseMarkers),
		"weak_connectors", len(lex.WeakConnectors),
		"min_words_to_keep", lex.MinWordsToKeep,
		"min_words_to_merge", lex.MinWordsToMerge,
		"concurrency", cfg.concurrency,
	)

	return &Segmenter{
		rules:       pipeline.Compile(lex),
		lexicon:     lex,
		concurrency: cfg.concurrency,
		logger:      cfg.logger,
	}, nil
}

// Lexicon returns a copy of the normalized lexicon in use.
func (s *Segmenter) Lexicon() lexicon.Lexicon {
	return s.lexicon.Normalized()
}

// Segment splits text into sentences. It never fails: empty or blank input
// yields an empty, non-nil slice.
func (s *Segmenter) Segment(text string) []string {
	return s.Trace(text).Sentences
}

// Trace segments text and keeps every intermediate result.
func (s *Segmenter) Trace(text string) Trace {
	t := s.rules.Trace(text)

	s.logger.Debug("segmented document",
		"bytes", len(text),
		"quotes", t.Quotes.Len(),
		"split", len(t.Split),
		"merged", len(t.Merged),
		"run_on", len(t.RunOnSplit),
		"refined", len(t.Refined),
		"sentences", len(t.Final),
	)

	return Trace{
		Normalized: t.Normalized,
		Marked:     t.Marked,
		Split:      t.Split,
		Restored:   t.Restored,
		Merged:     t.Merged,
		RunOnSplit: t.RunOnSplit,
		Refined:    t.Refined,
		Sentences:  t.Final,
	}
}

// SegmentAll segments docs concurrently. The result is index-aligned with
// docs. It returns ctx.Err() if the context is cancelled before every
// document has been processed.
func (s *Segmenter) SegmentAll(ctx context.Context, docs []string) ([][]string, error) {
	out := make([][]string, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, doc := range docs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = s.Segment(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
