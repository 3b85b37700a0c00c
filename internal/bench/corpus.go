// Package bench provides benchmarking utilities for sentence segmentation.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Header contains metadata parsed from a gold file header.
type Header struct {
	Source string
	Title  string
}

// ParseHeader extracts metadata from gold file header comments.
// Returns the header, remaining text after header, and any error.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var bodyStart int
	var lineEnd int
	inBody := false

	for scanner.Scan() {
		line := scanner.Text()
		lineEnd += len(line) + 1 // +1 for newline

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineEnd - len(line) - 1
			inBody = true
			break
		}

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}

	if !inBody {
		return h, "", nil
	}
	return h, strings.TrimSpace(text[bodyStart:]), nil
}

// ParseSentences returns the gold sentences of a body, one per non-blank line.
func ParseSentences(body string) []string {
	var sentences []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			sentences = append(sentences, line)
		}
	}
	return sentences
}

// Document is a gold-standard document: running text plus its reference
// segmentation.
type Document struct {
	ID        string // filename without extension
	Source    string
	Title     string
	Text      string // gold sentences joined by single spaces
	Sentences []string
}

// LoadDocument loads and parses a gold file.
func LoadDocument(fs afero.Fs, p string) (*Document, error) {
	data, err := afero.ReadFile(fs, p)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	header, body, err := ParseHeader(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	base := filepath.Base(p)
	sentences := ParseSentences(body)

	return &Document{
		ID:        strings.TrimSuffix(base, filepath.Ext(base)),
		Source:    header.Source,
		Title:     header.Title,
		Text:      strings.Join(sentences, " "),
		Sentences: sentences,
	}, nil
}

// LoadCorpus loads all .txt gold files from a directory, ordered by name.
func LoadCorpus(fs afero.Fs, dir string) ([]*Document, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var docs []*Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		doc, err := LoadDocument(fs, filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
