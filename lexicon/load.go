package lexicon

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML lexicon from path. Keys present in the file replace the
// corresponding defaults; absent keys keep them. Unknown keys are rejected.
// The result is not validated.
func Load(fs afero.Fs, path string) (Lexicon, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("read lexicon: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML lexicon layered over Default.
func Parse(data []byte) (Lexicon, error) {
	lex := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&lex); err != nil && !errors.Is(err, io.EOF) {
		return Lexicon{}, fmt.Errorf("parse lexicon: %w", err)
	}
	return lex, nil
}
