package bench

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/spf13/afero"

	urseg "github.com/jamesainslie/go-urseg"
)

func goldDocument(id string, sentences ...string) *Document {
	return &Document{
		ID:        id,
		Source:    "test",
		Text:      strings.Join(sentences, " "),
		Sentences: sentences,
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		predicted []int
		truth     []int
		tolerance int
		wantTP    int
		wantFP    int
		wantFN    int
	}{
		{
			name:      "perfect match",
			predicted: []int{10, 20, 30},
			truth:     []int{10, 20, 30},
			tolerance: 0,
			wantTP:    3,
		},
		{
			name:      "within tolerance",
			predicted: []int{11, 19, 31},
			truth:     []int{10, 20, 30},
			tolerance: 2,
			wantTP:    3,
		},
		{
			name:      "false positive",
			predicted: []int{10, 15, 20},
			truth:     []int{10, 20},
			tolerance: 0,
			wantTP:    2,
			wantFP:    1,
		},
		{
			name:      "false negative",
			predicted: []int{10},
			truth:     []int{10, 20},
			tolerance: 0,
			wantTP:    1,
			wantFN:    1,
		},
		{
			name:   "nothing predicted",
			truth:  []int{10},
			wantFN: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Tolerance: tt.tolerance}
			got := Evaluate(tt.predicted, tt.truth, cfg)

			if got.TruePositives != tt.wantTP {
				t.Errorf("TruePositives = %d, want %d", got.TruePositives, tt.wantTP)
			}
			if got.FalsePositives != tt.wantFP {
				t.Errorf("FalsePositives = %d, want %d", got.FalsePositives, tt.wantFP)
			}
			if got.FalseNegatives != tt.wantFN {
				t.Errorf("FalseNegatives = %d, want %d", got.FalseNegatives, tt.wantFN)
			}
		})
	}
}

func TestScore(t *testing.T) {
	m := Score(3, 1, 0, Config{PrecisionWeight: 2, RecallWeight: 1})

	if m.Precision != 0.75 {
		t.Errorf("Precision = %v, want 0.75", m.Precision)
	}
	if m.Recall != 1 {
		t.Errorf("Recall = %v, want 1", m.Recall)
	}
	if want := 2.5 / 3; math.Abs(m.WeightedScore-want) > 1e-9 {
		t.Errorf("WeightedScore = %v, want %v", m.WeightedScore, want)
	}

	zero := Score(0, 0, 0, DefaultConfig())
	if zero.F1 != 0 || zero.WeightedScore != 0 {
		t.Errorf("Score(0, 0, 0) = %+v, want zero scores", zero)
	}
}

func TestMetrics_Add(t *testing.T) {
	cfg := DefaultConfig()
	got := Score(1, 0, 1, cfg).Add(Score(2, 1, 0, cfg), cfg)

	if got.TruePositives != 3 || got.FalsePositives != 1 || got.FalseNegatives != 1 {
		t.Errorf("Add() counts = %+v", got)
	}
	if got.Precision != 0.75 {
		t.Errorf("Precision = %v, want 0.75", got.Precision)
	}
}

func TestEvaluateDocument(t *testing.T) {
	seg, err := urseg.New()
	if err != nil {
		t.Fatalf("failed to create segmenter: %v", err)
	}

	cfg := DefaultConfig()

	t.Run("perfect", func(t *testing.T) {
		doc := goldDocument("perfect", "وہ گھر گیا۔", "لیکن وہ واپس نہیں آیا۔")
		m := EvaluateDocument(seg, doc, cfg)
		if m.F1 != 1 {
			t.Errorf("F1 = %v, want 1 (%+v)", m.F1, m)
		}
	})

	t.Run("merged boundary is a false negative", func(t *testing.T) {
		doc := goldDocument("merged", "ٹھیک ہے۔", "اور وہ چلا گیا۔")
		m := EvaluateDocument(seg, doc, cfg)
		if m.TruePositives != 1 || m.FalsePositives != 0 || m.FalseNegatives != 1 {
			t.Errorf("metrics = %+v, want TP=1 FP=0 FN=1", m)
		}
	})
}

func TestEvaluateCorpus(t *testing.T) {
	seg, err := urseg.New(urseg.WithConcurrency(2))
	if err != nil {
		t.Fatalf("failed to create segmenter: %v", err)
	}

	docs := []*Document{
		goldDocument("a", "وہ گھر گیا۔", "لیکن وہ واپس نہیں آیا۔"),
		goldDocument("b", "ٹھیک ہے۔", "اور وہ چلا گیا۔"),
	}

	m, err := EvaluateCorpus(context.Background(), seg, docs, DefaultConfig())
	if err != nil {
		t.Fatalf("EvaluateCorpus() error = %v", err)
	}
	if m.TruePositives != 3 || m.FalsePositives != 0 || m.FalseNegatives != 1 {
		t.Errorf("metrics = %+v, want TP=3 FP=0 FN=1", m)
	}
	if m.Recall != 0.75 {
		t.Errorf("Recall = %v, want 0.75", m.Recall)
	}
}

func TestEvaluateCorpus_Cancelled(t *testing.T) {
	seg, err := urseg.New()
	if err != nil {
		t.Fatalf("failed to create segmenter: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs := []*Document{goldDocument("a", "وہ گھر گیا۔")}
	if _, err := EvaluateCorpus(ctx, seg, docs, DefaultConfig()); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestEvaluateCorpus_SampleCorpus(t *testing.T) {
	docs, err := LoadCorpus(afero.NewOsFs(), "../../testdata/corpus")
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}
	if len(docs) == 0 {
		t.Skip("sample corpus not available")
	}

	seg, err := urseg.New()
	if err != nil {
		t.Fatalf("failed to create segmenter: %v", err)
	}

	m, err := EvaluateCorpus(context.Background(), seg, docs, DefaultConfig())
	if err != nil {
		t.Fatalf("EvaluateCorpus() error = %v", err)
	}
	t.Logf("sample corpus: %+v", m)

	if m.F1 < 0.8 {
		t.Errorf("F1 = %v, want >= 0.8", m.F1)
	}
}
