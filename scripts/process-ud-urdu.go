//go:build ignore

// Process UD Urdu-UDTB CoNLL-U files into gold corpus files for urseg-bench.
// Each output file holds one chunk of consecutive treebank sentences.
// Usage: go run ./scripts/process-ud-urdu.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	source    = "https://github.com/UniversalDependencies/UD_Urdu-UDTB"
	chunkSize = 100 // sentences per gold file
)

func main() {
	inDir := "testdata/ud-urdu"
	outDir := "testdata/corpus"

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outDir, err)
		os.Exit(1)
	}

	splits := []string{"train", "dev", "test"}

	for _, split := range splits {
		inFile := filepath.Join(inDir, fmt.Sprintf("ur_udtb-ud-%s.conllu", split))

		fmt.Printf("Processing %s...\n", split)
		sentences, err := processCoNLLU(inFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inFile, err)
			continue
		}

		for i := 0; i*chunkSize < len(sentences); i++ {
			end := min((i+1)*chunkSize, len(sentences))
			name := fmt.Sprintf("udtb-%s-%03d", split, i)
			outFile := filepath.Join(outDir, name+".txt")
			if err := writeGold(outFile, name, sentences[i*chunkSize:end]); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outFile, err)
				continue
			}
		}

		fmt.Printf("  -> %d sentences in %d files\n", len(sentences), (len(sentences)+chunkSize-1)/chunkSize)
	}

	fmt.Println("\nDone! Gold files created in testdata/corpus/")
}

func processCoNLLU(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	var (
		sentences  []string
		currentTxt string
	)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		// Metadata line with sentence text
		if text, ok := strings.CutPrefix(line, "# text = "); ok {
			currentTxt = strings.Join(strings.Fields(text), " ")
			continue
		}

		// Blank line = end of sentence
		if line == "" && currentTxt != "" {
			sentences = append(sentences, currentTxt)
			currentTxt = ""
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning file: %w", err)
	}

	// Don't forget last sentence if no trailing blank
	if currentTxt != "" {
		sentences = append(sentences, currentTxt)
	}

	return sentences, nil
}

func writeGold(path, title string, sentences []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Source: %s\n# Title: %s\n\n", source, title)
	for _, s := range sentences {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
