package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	urseg "github.com/jamesainslie/go-urseg"
	"github.com/jamesainslie/go-urseg/internal/logging"
	"github.com/jamesainslie/go-urseg/internal/output"
	"github.com/jamesainslie/go-urseg/lexicon"
)

type options struct {
	output      string
	format      string
	lexiconPath string
	workers     int
	trace       bool
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
	opts := options{log: logging.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "urseg-cli [files...]",
		Short: "Split Urdu text into sentences",
		Long: `Split Urdu text into sentences, one per line.

Reads each file argument in turn, or standard input when none are given.`,
		Version:      fmt.Sprintf("%s (%s, %s)", version, commit, date),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, fs, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "write results to this file instead of stdout")
	flags.StringVar(&opts.format, "format", string(output.Text), "output format: text, json or pb")
	flags.StringVar(&opts.lexiconPath, "lexicon", "", "YAML lexicon layered over the built-in defaults")
	flags.IntVar(&opts.workers, "workers", 0, "documents segmented in parallel (0 = number of CPUs)")
	flags.BoolVar(&opts.trace, "trace", false, "log the output of every pipeline stage")
	flags.StringVar(&opts.log.Level, "log-level", opts.log.Level, "log level: debug, info, warn or error")
	flags.BoolVar(&opts.log.JSON, "log-json", false, "log in JSON")

	return cmd
}

func run(cmd *cobra.Command, fs afero.Fs, opts options, args []string) error {
	start := time.Now()

	if opts.trace {
		opts.log.Level = "debug"
	}
	logger, err := logging.New(cmd.ErrOrStderr(), opts.log)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	lex := lexicon.Default()
	if opts.lexiconPath != "" {
		if lex, err = lexicon.Load(fs, opts.lexiconPath); err != nil {
			return err
		}
	}

	segOpts := []urseg.Option{urseg.WithLexicon(lex), urseg.WithLogger(logger)}
	if opts.workers > 0 {
		segOpts = append(segOpts, urseg.WithConcurrency(opts.workers))
	}
	seg, err := urseg.New(segOpts...)
	if err != nil {
		return err
	}

	sources, texts, err := readInputs(cmd, fs, args)
	if err != nil {
		return err
	}

	var results [][]string
	if opts.trace {
		results = make([][]string, len(texts))
		for i, text := range texts {
			tr := seg.Trace(text)
			logger.Debug("trace",
				"source", sources[i],
				"normalized", tr.Normalized,
				"marked", tr.Marked,
				"split", tr.Restored,
				"merged", tr.Merged,
				"run_on", tr.RunOnSplit,
				"refined", tr.Refined,
				"sentences", tr.Sentences,
			)
			results[i] = tr.Sentences
		}
	} else {
		results, err = seg.SegmentAll(cmd.Context(), texts)
		if err != nil {
			return err
		}
	}

	docs := make([]output.Document, len(results))
	total := 0
	for i, sentences := range results {
		docs[i] = output.Document{Source: sources[i], Sentences: sentences}
		total += len(sentences)
	}

	if err := writeOutput(cmd, fs, opts.output, format, docs); err != nil {
		return err
	}

	logger.Info("segmented",
		"documents", len(docs),
		"sentences", total,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

func readInputs(cmd *cobra.Command, fs afero.Fs, args []string) (sources, texts []string, err error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
		return []string{"-"}, []string{string(data)}, nil
	}

	for _, path := range args {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", path, err)
		}
		sources = append(sources, path)
		texts = append(texts, string(data))
	}
	return sources, texts, nil
}

func writeOutput(cmd *cobra.Command, fs afero.Fs, path string, format output.Format, docs []output.Document) error {
	if path == "" {
		return output.Write(cmd.OutOrStdout(), format, docs)
	}

	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := output.Write(f, format, docs); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
