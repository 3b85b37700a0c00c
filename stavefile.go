//go:build stave

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// binaries maps each output under bin/ to its main package.
var binaries = map[string]string{
	"urseg-cli":   "./cmd/urseg-cli",
	"urseg-bench": "./cmd/urseg-bench",
}

var Default = All

// All lints, tests and builds.
func All() {
	st.SerialDeps(Lint, Test, Build)
}

// Build compiles urseg-cli and urseg-bench into bin/, stamping the version.
func Build() error {
	ldflags := versionFlags()
	for name, pkg := range binaries {
		if err := build(name, pkg, ldflags); err != nil {
			return err
		}
	}
	return nil
}

func build(name, pkg, ldflags string) error {
	out := "bin/" + name
	stale, err := target.Glob(out, "**/*.go", "go.mod", "go.sum")
	if err != nil {
		return fmt.Errorf("check %s: %w", name, err)
	}
	if !stale {
		if st.Verbose() {
			fmt.Println(name, "is up to date")
		}
		return nil
	}
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, pkg)
}

func versionFlags() string {
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s",
		strings.TrimSpace(version), strings.TrimSpace(commit), time.Now().Format(time.RFC3339))
}

// Test runs the test suite under the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "-cover", "./...")
}

// Coverage writes coverage.out and an HTML report.
func Coverage() error {
	if err := sh.RunV("go", "test", "-race", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes bin/ and coverage output.
func Clean() error {
	for _, p := range []string{"bin", "coverage.out", "coverage.html"} {
		if err := sh.Rm(p); err != nil {
			return fmt.Errorf("remove %s: %w", p, err)
		}
	}
	return nil
}

// Bench scores the segmenter against a gold corpus.
type Bench st.Namespace

// Run prints precision, recall and F1 for the corpus in URSEG_CORPUS
// (default testdata/corpus), using URSEG_LEXICON if set.
func (Bench) Run() error {
	st.Deps(Build)
	return sh.RunV("./bin/urseg-bench", benchArgs()...)
}

// Sweep ranks merge/keep thresholds by weighted score.
func (Bench) Sweep() error {
	st.Deps(Build)
	return sh.RunV("./bin/urseg-bench", append(benchArgs(), "--sweep")...)
}

// Corpus regenerates testdata/corpus from the UD Urdu-UDTB .conllu files
// under testdata/ud-urdu.
func (Bench) Corpus() error {
	return sh.RunV("go", "run", "./scripts/process-ud-urdu.go")
}

func benchArgs() []string {
	corpus := os.Getenv("URSEG_CORPUS")
	if corpus == "" {
		corpus = "testdata/corpus"
	}
	args := []string{"--corpus", corpus}
	if lex := os.Getenv("URSEG_LEXICON"); lex != "" {
		args = append(args, "--lexicon", lex)
	}
	return args
}
