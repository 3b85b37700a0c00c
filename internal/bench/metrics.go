package bench

import (
	"context"
	"fmt"

	urseg "github.com/jamesainslie/go-urseg"
)

// Config holds evaluation parameters.
type Config struct {
	Tolerance       int // skeleton rune match tolerance
	PrecisionWeight float64
	RecallWeight    float64
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance:       3,
		PrecisionWeight: 1.0,
		RecallWeight:    1.0,
	}
}

// Metrics holds evaluation results.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
	WeightedScore  float64
}

// Score derives precision, recall and the weighted score from raw counts.
func Score(tp, fp, fn int, cfg Config) Metrics {
	m := Metrics{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}

	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	wp := cfg.PrecisionWeight
	wr := cfg.RecallWeight
	if wp+wr > 0 {
		m.WeightedScore = (wp*m.Precision + wr*m.Recall) / (wp + wr)
	}

	return m
}

// Add sums the counts of two results and rescores them.
func (m Metrics) Add(other Metrics, cfg Config) Metrics {
	return Score(
		m.TruePositives+other.TruePositives,
		m.FalsePositives+other.FalsePositives,
		m.FalseNegatives+other.FalseNegatives,
		cfg,
	)
}

// Evaluate compares predicted boundaries against ground truth.
// Uses greedy left-to-right matching within tolerance.
func Evaluate(predicted, truth []int, cfg Config) Metrics {
	matched := make([]bool, len(truth))
	tp := 0

	for _, p := range predicted {
		for i, t := range truth {
			if matched[i] {
				continue
			}
			diff := p - t
			if diff < 0 {
				diff = -diff
			}
			if diff <= cfg.Tolerance {
				matched[i] = true
				tp++
				break
			}
		}
	}

	return Score(tp, len(predicted)-tp, len(truth)-tp, cfg)
}

// EvaluateDocument segments the document text and scores the result
// against its gold sentences.
func EvaluateDocument(seg *urseg.Segmenter, doc *Document, cfg Config) Metrics {
	return evaluate(doc, seg.Segment(doc.Text), cfg)
}

// EvaluateCorpus segments every document concurrently and returns the
// summed metrics.
func EvaluateCorpus(ctx context.Context, seg *urseg.Segmenter, docs []*Document, cfg Config) (Metrics, error) {
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Text
	}

	segmented, err := seg.SegmentAll(ctx, texts)
	if err != nil {
		return Metrics{}, fmt.Errorf("segment corpus: %w", err)
	}

	total := Score(0, 0, 0, cfg)
	for i, doc := range docs {
		total = total.Add(evaluate(doc, segmented[i], cfg), cfg)
	}
	return total, nil
}

func evaluate(doc *Document, predicted []string, cfg Config) Metrics {
	truth := Boundaries(doc.Text, doc.Sentences)
	return Evaluate(Boundaries(doc.Text, predicted), truth, cfg)
}
