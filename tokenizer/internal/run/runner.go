// Package run drives whole tokenize runs: read inputs, lex, and fan each
// token's side effects out to the stream writer and the aggregators.
package run

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ctokenize/ctok/tokenizer/internal/lexer"
	"github.com/ctokenize/ctok/tokenizer/internal/metrics"
	"github.com/ctokenize/ctok/tokenizer/internal/stream"
	"github.com/ctokenize/ctok/tokenizer/internal/vocab"
)

// Input names one source to tokenize. Path "-" reads stdin; Name is the
// label carried in stream records.
type Input struct {
	Name string
	Path string
}

// Runner processes a set of independent inputs. Lexing itself is pure
// in-memory computation; the only I/O is the whole-buffer read per input
// and the record/summary writes. The first fatal error aborts the run.
type Runner struct {
	Grammar *lexer.Grammar
	Stream  *stream.Writer // nil unless streaming
	Vocab   *vocab.Counter // nil unless counting vocabulary
	Agg     *metrics.Aggregate
	Jobs    int // worker count; <=1 runs sequentially
}

func (r *Runner) Run(inputs []Input) error {
	if r.Jobs > 1 && len(inputs) > 1 {
		return r.runParallel(inputs)
	}
	for _, in := range inputs {
		src, err := readInput(in.Path)
		if err != nil {
			return err
		}
		if err := r.collect(r.lexOne(in.Name, src)); err != nil {
			return err
		}
	}
	return r.flush()
}

// fileResult carries one file's private aggregation state back to the
// collector: serialized records, metrics and a vocabulary shard.
type fileResult struct {
	name    string
	records bytes.Buffer
	m       metrics.Metrics
	shard   *vocab.Counter
	err     error
}

// lexOne tokenizes one buffer into private state, so it is safe to call
// from a worker goroutine.
func (r *Runner) lexOne(name string, src []byte) *fileResult {
	res := &fileResult{name: name}
	var sw *stream.Writer
	if r.Stream != nil {
		sw = stream.NewWriter(&res.records)
	}
	if r.Vocab != nil {
		res.shard = vocab.NewCounter()
	}
	lx := lexer.New(src, r.Grammar)
	for {
		t, ok := lx.Next()
		if !ok {
			break
		}
		res.m.Add(t.Kind, len(t.Lexeme))
		if res.shard != nil && (t.Kind == lexer.TokIdent || t.Kind == lexer.TokKeyword) {
			res.shard.Add(t.Lexeme)
		}
		if sw != nil {
			if err := sw.WriteToken(name, t); err != nil {
				res.err = fmt.Errorf("encode %s: %w", name, err)
				return res
			}
		}
	}
	if sw != nil {
		if err := sw.Flush(); err != nil {
			res.err = fmt.Errorf("encode %s: %w", name, err)
		}
	}
	return res
}

// collect folds one file's results into the shared stream and aggregators.
// Callers serialize calls: this is the single-writer merge boundary.
func (r *Runner) collect(res *fileResult) error {
	if res.err != nil {
		return res.err
	}
	if r.Stream != nil {
		if err := r.Stream.WriteRaw(res.records.Bytes()); err != nil {
			return fmt.Errorf("write stream: %w", err)
		}
	}
	if r.Agg != nil {
		r.Agg.AddFile(&res.m)
	}
	if r.Vocab != nil && res.shard != nil {
		r.Vocab.Merge(res.shard)
	}
	return nil
}

// runParallel fans inputs across Jobs workers. Each worker owns the private
// state in its fileResult; the collector loop below is the only place the
// shared stream, metrics and vocabulary are touched. Per-file record order
// is preserved; file-level interleaving follows completion order.
func (r *Runner) runParallel(inputs []Input) error {
	jobs := make(chan Input)
	results := make(chan *fileResult, r.Jobs)

	var wg sync.WaitGroup
	for w := 0; w < r.Jobs; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for in := range jobs {
				src, err := readInput(in.Path)
				if err != nil {
					results <- &fileResult{name: in.Name, err: err}
					continue
				}
				results <- r.lexOne(in.Name, src)
			}
		}()
	}
	go func() {
		for _, in := range inputs {
			jobs <- in
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var firstErr error
	for res := range results {
		if firstErr != nil {
			continue // drain remaining workers; first error wins
		}
		firstErr = r.collect(res)
	}
	if firstErr != nil {
		return firstErr
	}
	return r.flush()
}

func (r *Runner) flush() error {
	if r.Stream != nil {
		if err := r.Stream.Flush(); err != nil {
			return fmt.Errorf("write stream: %w", err)
		}
	}
	return nil
}

// readInput slurps one whole input buffer up front.
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
