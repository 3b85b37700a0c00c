// Package output renders segmentation results in the formats the CLI offers.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported format names.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how documents are written.
type Format string

// Supported formats.
const (
	Text     Format = "text" // one sentence per line
	JSON     Format = "json" // protojson rendering of a structpb.Struct
	Protobuf Format = "pb"   // the same Struct in protobuf wire format
)

// Formats lists every supported format.
var Formats = []Format{Text, JSON, Protobuf}

// ParseFormat resolves a format name, ignoring case.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Document is the segmentation result for one input.
type Document struct {
	Source    string
	Sentences []string
}

// Write renders docs to w in the given format.
func Write(w io.Writer, f Format, docs []Document) error {
	switch f {
	case Text:
		return writeText(w, docs)
	case JSON:
		st, err := Struct(docs)
		if err != nil {
			return err
		}
		data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(st)
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case Protobuf:
		st, err := Struct(docs)
		if err != nil {
			return err
		}
		data, err := proto.MarshalOptions{Deterministic: true}.Marshal(st)
		if err != nil {
			return fmt.Errorf("marshal protobuf: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Struct converts docs to {"documents": [{"source": ..., "sentences": [...]}]}.
func Struct(docs []Document) (*structpb.Struct, error) {
	list := make([]any, len(docs))
	for i, d := range docs {
		sentences := make([]any, len(d.Sentences))
		for j, s := range d.Sentences {
			sentences[j] = s
		}
		list[i] = map[string]any{
			"source":    d.Source,
			"sentences": sentences,
		}
	}

	st, err := structpb.NewStruct(map[string]any{"documents": list})
	if err != nil {
		return nil, fmt.Errorf("build struct: %w", err)
	}
	return st, nil
}

func writeText(w io.Writer, docs []Document) error {
	bw := bufio.NewWriter(w)
	for _, d := range docs {
		for _, s := range d.Sentences {
			if _, err := bw.WriteString(s); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
