package bench

import (
	"context"
	"testing"

	"github.com/jamesainslie/go-urseg/lexicon"
)

func TestGrid(t *testing.T) {
	grid := Grid(1, 2)

	if len(grid) != 6 {
		t.Fatalf("got %d grid points, want 6", len(grid))
	}
	if grid[0] != (Params{}) {
		t.Errorf("grid[0] = %+v, want zero params", grid[0])
	}
	if want := (Params{MinWordsToMerge: 1, MinWordsToKeep: 2}); grid[5] != want {
		t.Errorf("grid[5] = %+v, want %+v", grid[5], want)
	}
}

func TestSweep(t *testing.T) {
	docs := []*Document{
		goldDocument("short", "وہ بہت دیر تک سوتا رہا۔", "پھر اٹھا۔"),
	}
	grid := []Params{
		{MinWordsToMerge: 3, MinWordsToKeep: 2},
		{MinWordsToMerge: 0, MinWordsToKeep: 0},
	}

	results, err := Sweep(context.Background(), docs, lexicon.Default(), DefaultConfig(), grid)
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	best := results[0]
	if best.Params != grid[1] {
		t.Errorf("best params = %+v, want %+v", best.Params, grid[1])
	}
	if best.Metrics.F1 != 1 {
		t.Errorf("best F1 = %v, want 1", best.Metrics.F1)
	}
	if results[1].Metrics.FalseNegatives != 1 {
		t.Errorf("merged run FalseNegatives = %d, want 1", results[1].Metrics.FalseNegatives)
	}
}

func TestSweep_InvalidLexicon(t *testing.T) {
	lex := lexicon.Default()
	lex.BoundaryPunctuation = nil

	if _, err := Sweep(context.Background(), nil, lex, DefaultConfig(), Grid(0, 0)); err == nil {
		t.Error("expected error for invalid lexicon")
	}
}
