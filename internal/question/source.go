package question

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"
)

//go:embed questions.json
var embeddedQuestions []byte

// Source supplies a question set when a quiz starts.
type Source interface {
	Load(ctx context.Context) ([]Question, error)
}

// FileSource reads a JSON or YAML question file from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) ([]Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}
	questions, err := Decode(data, FormatFromPath(s.Path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return questions, nil
}

type embeddedSource struct{}

func (embeddedSource) Load(ctx context.Context) ([]Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Decode(embeddedQuestions, FormatJSON)
}

// Embedded returns the built-in question set.
func Embedded() Source {
	return embeddedSource{}
}

// NewSource returns a FileSource for path, or the built-in set when path is empty.
func NewSource(path string) Source {
	if path == "" {
		return Embedded()
	}
	return FileSource{Path: path}
}

// Static serves a fixed in-memory question set.
type Static []Question

func (s Static) Load(ctx context.Context) ([]Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s), nil
}
