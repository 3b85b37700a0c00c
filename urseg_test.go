package urseg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesainslie/go-urseg/lexicon"
)

func newSegmenter(t *testing.T, opts ...Option) *Segmenter {
	t.Helper()
	seg, err := New(opts...)
	require.NoError(t, err)
	return seg
}

func TestNew(t *testing.T) {
	seg := newSegmenter(t)
	assert.NotNil(t, seg.rules)
	assert.Equal(t, lexicon.Default().Normalized(), seg.Lexicon())
	assert.Positive(t, seg.concurrency)
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{"no boundary punctuation", []Option{WithBoundaryPunctuation()}, "BoundaryPunctuation"},
		{"negative keep threshold", []Option{WithMinWordsToKeep(-1)}, "MinWordsToKeep"},
		{"strong marker outside markers", []Option{WithStrongMarkers("پس")}, "not a discourse marker"},
		{"connector is a marker", []Option{WithWeakConnectors("لیکن")}, "also a discourse marker"},
		{"missing run-on marker", []Option{WithRunOnMarker("")}, "run_on_marker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, err := New(tt.opts...)
			require.Error(t, err)
			assert.Nil(t, seg)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "expected ErrInvalidConfig, got: %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNew_WithOptions(t *testing.T) {
	seg := newSegmenter(t,
		WithMinWordsToKeep(0),
		WithMinWordsToMerge(1),
		WithConcurrency(3),
		WithConcurrency(0),
	)
	lex := seg.Lexicon()
	assert.Equal(t, 0, lex.MinWordsToKeep)
	assert.Equal(t, 1, lex.MinWordsToMerge)
	assert.Equal(t, 3, seg.concurrency)
}

func TestNew_OptionsAfterLexicon(t *testing.T) {
	base := lexicon.Default()
	base.MinWordsToKeep = 5
	seg := newSegmenter(t, WithLexicon(base), WithMinWordsToKeep(1))
	assert.Equal(t, 1, seg.Lexicon().MinWordsToKeep)
	assert.Equal(t, 5, base.MinWordsToKeep)
}

func TestNew_OptionsCopyInput(t *testing.T) {
	markers := []string{"لیکن", "مگر"}
	seg := newSegmenter(t, WithDiscourseMarkers(markers...), WithStrongMarkers("لیکن"))
	markers[0] = "اب"
	assert.Equal(t, []string{"لیکن", "مگر"}, seg.Lexicon().DiscourseMarkers)
}

func TestSegment(t *testing.T) {
	seg := newSegmenter(t)
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "discourse marker",
			input: "وہ گھر گیا۔ لیکن وہ واپس نہیں آیا۔",
			want:  []string{"وہ گھر گیا۔", "لیکن وہ واپس نہیں آیا۔"},
		},
		{
			name:  "run-on",
			input: "اس نے کہا ہے کہ وہ کل آئے گا۔",
			want:  []string{"اس نے کہا ہے۔", "کہ وہ کل آئے گا۔"},
		},
		{
			name:  "weak connector",
			input: "ٹھیک ہے۔ اور وہ چلا گیا۔",
			want:  []string{"ٹھیک ہے اور وہ چلا گیا۔"},
		},
		{
			name:  "quotation kept whole",
			input: "اس نے کہا ‘‘ٹیکسٹ۔اندر۔’’ اور پھر وہ چلا گیا۔",
			want:  []string{"اس نے کہا ‘‘ٹیکسٹ۔اندر۔’’ اور پھر وہ چلا گیا۔"},
		},
		{
			name:  "fragment dropped",
			input: "نہیں۔",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seg.Segment(tt.input))
		})
	}
}

func TestSegment_EmptyIsNonNil(t *testing.T) {
	seg := newSegmenter(t)
	for _, in := range []string{"", "   ", "\n\t"} {
		got := seg.Segment(in)
		assert.NotNil(t, got, "input %q", in)
		assert.Empty(t, got, "input %q", in)
	}
}

func TestSegment_CustomLexicon(t *testing.T) {
	seg := newSegmenter(t,
		WithBoundaryPunctuation("!", "۔"),
		WithMinWordsToKeep(0),
		WithMinWordsToMerge(0),
	)
	got := seg.Segment("وہ گیا لیکن آیا")
	assert.Equal(t, []string{"وہ گیا!", "لیکن آیا"}, got)
}

func TestTrace(t *testing.T) {
	seg := newSegmenter(t)
	tr := seg.Trace("  وہ گھر گیا   لیکن واپس نہیں آیا ۔ ")

	assert.Equal(t, "وہ گھر گیا لیکن واپس نہیں آیا۔", tr.Normalized)
	assert.Equal(t, "وہ گھر گیا۔ لیکن واپس نہیں آیا۔", tr.Marked)
	assert.Equal(t, []string{"وہ گھر گیا۔", "لیکن واپس نہیں آیا۔"}, tr.Split)
	assert.Equal(t, tr.Split, tr.Restored)
	assert.Equal(t, []string{"وہ گھر گیا۔", "لیکن واپس نہیں آیا۔"}, tr.Sentences)
}

func TestTrace_LogsStageCounts(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	seg := newSegmenter(t, WithLogger(logger))

	seg.Segment("وہ گھر گیا۔ لیکن وہ واپس نہیں آیا۔")

	out := buf.String()
	assert.Contains(t, out, "segmenter ready")
	assert.Contains(t, out, "segmented document")
	assert.Contains(t, out, "sentences=2")
}

func TestSegmentAll(t *testing.T) {
	seg := newSegmenter(t, WithConcurrency(2))
	docs := make([]string, 20)
	for i := range docs {
		docs[i] = fmt.Sprintf("دستاویز نمبر %d یہاں ہے۔ لیکن یہ ختم ہو گئی۔", i)
	}

	got, err := seg.SegmentAll(context.Background(), docs)
	require.NoError(t, err)
	require.Len(t, got, len(docs))
	for i, sentences := range got {
		assert.Equal(t, seg.Segment(docs[i]), sentences)
		assert.Contains(t, sentences[0], fmt.Sprintf("%d", i))
	}
}

func TestSegmentAll_Empty(t *testing.T) {
	seg := newSegmenter(t)
	got, err := seg.SegmentAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSegmentAll_ContextCancelled(t *testing.T) {
	seg := newSegmenter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := seg.SegmentAll(ctx, []string{"وہ گھر گیا۔", "وہ واپس آیا۔"})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSegmenter_ConcurrentUse(t *testing.T) {
	seg := newSegmenter(t)
	in := strings.Repeat("وہ گھر گیا مگر کوئی نہیں آیا۔ ", 10)
	want := seg.Segment(in)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, seg.Segment(in))
		}()
	}
	wg.Wait()
}
