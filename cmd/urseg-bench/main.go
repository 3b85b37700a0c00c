package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	urseg "github.com/jamesainslie/go-urseg"
	"github.com/jamesainslie/go-urseg/internal/bench"
	"github.com/jamesainslie/go-urseg/internal/logging"
	"github.com/jamesainslie/go-urseg/lexicon"
)

type options struct {
	corpusDir   string
	lexiconPath string
	cfg         bench.Config
	sweep       bool
	mergeMax    int
	keepMax     int
	log         logging.Config
}

// Set by the build through -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(afero.NewOsFs()).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	opts := options{
		cfg: bench.DefaultConfig(),
		log: logging.DefaultConfig(),
	}
	opts.log.Level = "warn"

	cmd := &cobra.Command{
		Use:          "urseg-bench",
		Short:        "Score the segmenter against a gold-standard Urdu corpus",
		Version:      fmt.Sprintf("%s (%s, %s)", version, commit, date),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, fs, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.corpusDir, "corpus", "testdata/corpus", "directory containing gold files")
	flags.StringVar(&opts.lexiconPath, "lexicon", "", "YAML lexicon layered over the built-in defaults")
	flags.IntVar(&opts.cfg.Tolerance, "tolerance", opts.cfg.Tolerance, "character tolerance for boundary matching")
	flags.Float64Var(&opts.cfg.PrecisionWeight, "wp", opts.cfg.PrecisionWeight, "precision weight")
	flags.Float64Var(&opts.cfg.RecallWeight, "wr", opts.cfg.RecallWeight, "recall weight")
	flags.BoolVar(&opts.sweep, "sweep", false, "sweep the merge and keep thresholds")
	flags.IntVar(&opts.mergeMax, "merge-max", 5, "largest min_words_to_merge in the sweep")
	flags.IntVar(&opts.keepMax, "keep-max", 4, "largest min_words_to_keep in the sweep")
	flags.StringVar(&opts.log.Level, "log-level", opts.log.Level, "log level: debug, info, warn or error")

	return cmd
}

func run(cmd *cobra.Command, fs afero.Fs, opts options) error {
	logger, err := logging.New(cmd.ErrOrStderr(), opts.log)
	if err != nil {
		return err
	}

	lex := lexicon.Default()
	if opts.lexiconPath != "" {
		if lex, err = lexicon.Load(fs, opts.lexiconPath); err != nil {
			return err
		}
	}

	docs, err := bench.LoadCorpus(fs, opts.corpusDir)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("no gold files in %s", opts.corpusDir)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loaded %d documents from %s\n\n", len(docs), opts.corpusDir)

	if opts.sweep {
		return runSweep(cmd.Context(), out, docs, lex, opts)
	}

	seg, err := urseg.New(urseg.WithLexicon(lex), urseg.WithLogger(logger))
	if err != nil {
		return err
	}
	m, err := bench.EvaluateCorpus(cmd.Context(), seg, docs, opts.cfg)
	if err != nil {
		return err
	}
	printMetrics(out, m)
	return nil
}

func runSweep(ctx context.Context, out io.Writer, docs []*bench.Document, lex lexicon.Lexicon, opts options) error {
	grid := bench.Grid(opts.mergeMax, opts.keepMax)

	results, err := bench.Sweep(ctx, docs, lex, opts.cfg, grid)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	fmt.Fprintf(out, "Threshold Sweep Results (wp=%.1f, wr=%.1f)\n", opts.cfg.PrecisionWeight, opts.cfg.RecallWeight)
	fmt.Fprintln(out, strings.Repeat("-", 50))
	fmt.Fprintf(out, "%-6s %-6s %-8s %-8s %-8s %-8s\n", "Merge", "Keep", "Prec", "Rec", "F1", "Weighted")

	// Print in grid order for readability
	for _, p := range grid {
		for _, r := range results {
			if r.Params == p {
				fmt.Fprintf(out, "%-6d %-6d %-8.2f %-8.2f %-8.2f %-8.2f\n",
					p.MinWordsToMerge, p.MinWordsToKeep,
					r.Metrics.Precision, r.Metrics.Recall, r.Metrics.F1, r.Metrics.WeightedScore)
				break
			}
		}
	}

	fmt.Fprintln(out, strings.Repeat("-", 50))
	if len(results) > 0 {
		best := results[0]
		fmt.Fprintf(out, "Optimal: merge=%d keep=%d (Weighted: %.2f)\n",
			best.Params.MinWordsToMerge, best.Params.MinWordsToKeep, best.Metrics.WeightedScore)
	}
	return nil
}

func printMetrics(out io.Writer, m bench.Metrics) {
	fmt.Fprintf(out, "Precision: %.2f  Recall: %.2f  F1: %.2f  Weighted: %.2f\n",
		m.Precision, m.Recall, m.F1, m.WeightedScore)
	fmt.Fprintf(out, "(TP: %d, FP: %d, FN: %d)\n", m.TruePositives, m.FalsePositives, m.FalseNegatives)
}
