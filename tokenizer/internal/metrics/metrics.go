// Package metrics accumulates per-kind token counts and byte totals, per
// file and across a run.
package metrics

import (
	"encoding/json"
	"io"

	"github.com/ctokenize/ctok/tokenizer/internal/lexer"
)

// Metrics counts tokens for one file, or for a merged set of files. It is
// not safe for concurrent mutation; parallel runs give each worker its own
// instance and merge under the single-writer discipline.
type Metrics struct {
	Counts          [lexer.NumKinds]uint64
	TokensTotal     uint64
	BytesTotal      uint64 // sum of lexeme lengths; equals the file size by total coverage
	BytesComments   uint64
	BytesWhitespace uint64
	Newlines        uint64
}

// Add records one token of the given kind spanning n bytes.
func (m *Metrics) Add(kind lexer.TokKind, n int) {
	m.Counts[kind]++
	m.TokensTotal++
	m.BytesTotal += uint64(n)
	switch kind {
	case lexer.TokLineComment, lexer.TokBlockComment:
		m.BytesComments += uint64(n)
	case lexer.TokWS:
		m.BytesWhitespace += uint64(n)
	case lexer.TokNewline:
		m.BytesWhitespace += uint64(n)
		m.Newlines++
	}
}

// Merge folds other into m.
func (m *Metrics) Merge(other *Metrics) {
	for k := range m.Counts {
		m.Counts[k] += other.Counts[k]
	}
	m.TokensTotal += other.TokensTotal
	m.BytesTotal += other.BytesTotal
	m.BytesComments += other.BytesComments
	m.BytesWhitespace += other.BytesWhitespace
	m.Newlines += other.Newlines
}

// Aggregate is the run-wide total, owned by the driving process.
type Aggregate struct {
	Files uint64
	Metrics
}

// AddFile folds one file's metrics into the aggregate.
func (a *Aggregate) AddFile(m *Metrics) {
	a.Files++
	a.Metrics.Merge(m)
}

// Summary is the single JSON object stats mode emits at the end of a run.
type Summary struct {
	Files           uint64            `json:"files"`
	Tokens          uint64            `json:"tokens"`
	Bytes           uint64            `json:"bytes"`
	Lines           uint64            `json:"lines"`
	BytesComments   uint64            `json:"bytes_comments"`
	BytesWhitespace uint64            `json:"bytes_whitespace"`
	Kinds           map[string]uint64 `json:"kinds"`
}

func (a *Aggregate) Summary() Summary {
	kinds := make(map[string]uint64, lexer.NumKinds)
	for k, c := range a.Counts {
		kinds[lexer.TokKind(k).String()] = c
	}
	return Summary{
		Files:           a.Files,
		Tokens:          a.TokensTotal,
		Bytes:           a.BytesTotal,
		Lines:           a.Newlines,
		BytesComments:   a.BytesComments,
		BytesWhitespace: a.BytesWhitespace,
		Kinds:           kinds,
	}
}

// WriteJSON emits the summary as one JSON object followed by a newline.
// Summary content is ASCII by construction, so encoding/json is safe here.
func (a *Aggregate) WriteJSON(w io.Writer) error {
	data, err := json.Marshal(a.Summary())
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
