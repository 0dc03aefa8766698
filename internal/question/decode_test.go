package question

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validJSON = `[
  {"id": 1, "question": "2 + 2?", "options": ["3", "4"], "correctIndex": 1},
  {"id": "b", "question": "Capital of France?", "options": ["Paris", "Rome", "Oslo"], "correctIndex": 0}
]`

const validYAML = `
- id: 1
  question: "2 + 2?"
  options: ["3", "4"]
  correctIndex: 1
- id: b
  question: Capital of France?
  options:
    - Paris
    - Rome
  correctIndex: 0
`

func TestDecode_JSON(t *testing.T) {
	qs, err := Decode([]byte(validJSON), FormatJSON)
	require.NoError(t, err)
	require.Len(t, qs, 2)

	assert.Equal(t, ID("1"), qs[0].ID)
	assert.Equal(t, ID("b"), qs[1].ID)
	assert.Equal(t, "4", qs[0].CorrectOption())
	assert.Equal(t, []string{"Paris", "Rome", "Oslo"}, qs[1].Options)
}

func TestDecode_YAML(t *testing.T) {
	qs, err := Decode([]byte(validYAML), FormatYAML)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, ID("1"), qs[0].ID)
	assert.Equal(t, 1, qs[0].CorrectIndex)
	assert.Equal(t, "Paris", qs[1].CorrectOption())
}

func TestDecode_SchemaRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty array", `[]`},
		{"not an array", `{"id": 1}`},
		{"missing options", `[{"id": 1, "question": "q", "correctIndex": 0}]`},
		{"single option", `[{"id": 1, "question": "q", "options": ["a"], "correctIndex": 0}]`},
		{"negative correctIndex", `[{"id": 1, "question": "q", "options": ["a", "b"], "correctIndex": -1}]`},
		{"fractional correctIndex", `[{"id": 1, "question": "q", "options": ["a", "b"], "correctIndex": 0.5}]`},
		{"empty question text", `[{"id": 1, "question": "", "options": ["a", "b"], "correctIndex": 0}]`},
		{"bool id", `[{"id": true, "question": "q", "options": ["a", "b"], "correctIndex": 0}]`},
		{"broken json", `[{"id": 1,`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc), FormatJSON)
			require.Error(t, err)
		})
	}
}

func TestDecode_SemanticRejects(t *testing.T) {
	doc := `[
	  {"id": 1, "question": "q1", "options": ["a", "b"], "correctIndex": 2},
	  {"id": 1, "question": "q2", "options": ["a", "b"], "correctIndex": 0}
	]`
	_, err := Decode([]byte(doc), FormatJSON)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, err.Error(), "correctIndex")
	assert.Contains(t, err.Error(), "duplicates question 1")
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("set.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("SET.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("set.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("set"))
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quiz.yml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o644))

	qs, err := FileSource{Path: path}.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, qs, 2)
}

func TestFileSource_Missing(t *testing.T) {
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "nope.json")}.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestEmbedded(t *testing.T) {
	qs, err := Embedded().Load(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, qs)
	require.NoError(t, Validate(qs))
}

func TestNewSource(t *testing.T) {
	assert.IsType(t, embeddedSource{}, NewSource(""))
	assert.Equal(t, FileSource{Path: "x.json"}, NewSource("x.json"))
}

func TestSources_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Embedded().Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = Static{}.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatic_ReturnsCopy(t *testing.T) {
	src := Static{{ID: "1", Question: "q", Options: []string{"a", "b"}}}
	qs, err := src.Load(context.Background())
	require.NoError(t, err)

	qs[0].Question = "changed"
	assert.Equal(t, "q", src[0].Question)
}
