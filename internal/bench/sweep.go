package bench

import (
	"context"
	"sort"

	urseg "github.com/jamesainslie/go-urseg"
	"github.com/jamesainslie/go-urseg/lexicon"
)

// Params is one point of the threshold grid.
type Params struct {
	MinWordsToMerge int
	MinWordsToKeep  int
}

// SweepResult holds metrics for one grid point.
type SweepResult struct {
	Params  Params
	Metrics Metrics
}

// Grid generates every (merge, keep) pair from zero up to the given maxima.
func Grid(mergeMax, keepMax int) []Params {
	var grid []Params
	for merge := 0; merge <= mergeMax; merge++ {
		for keep := 0; keep <= keepMax; keep++ {
			grid = append(grid, Params{MinWordsToMerge: merge, MinWordsToKeep: keep})
		}
	}
	return grid
}

// Sweep evaluates every grid point against the corpus and returns results
// sorted by weighted score, best first. Ties keep grid order.
func Sweep(ctx context.Context, docs []*Document, lex lexicon.Lexicon, cfg Config, grid []Params) ([]SweepResult, error) {
	results := make([]SweepResult, 0, len(grid))

	for _, p := range grid {
		seg, err := urseg.New(
			urseg.WithLexicon(lex),
			urseg.WithMinWordsToMerge(p.MinWordsToMerge),
			urseg.WithMinWordsToKeep(p.MinWordsToKeep),
		)
		if err != nil {
			return nil, err
		}

		m, err := EvaluateCorpus(ctx, seg, docs, cfg)
		if err != nil {
			return nil, err
		}

		results = append(results, SweepResult{
			Params:  p,
			Metrics: m,
		})
	}

	// Sort by weighted score descending
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Metrics.WeightedScore > results[j].Metrics.WeightedScore
	})

	return results, nil
}
