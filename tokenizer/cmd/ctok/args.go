package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ctokenize/ctok/tokenizer/internal/run"
)

/* ---------- shared tokenize flags ---------- */

type tokenizeArgs struct {
	out       string
	stdinName string
	grammar   string
	jobs      int
	files     []string
}

// parseTokenizeArgs handles the flags shared by stream/stats/vocab; flags
// may appear anywhere. A bare "-" is an input (stdin), not a flag.
func parseTokenizeArgs(argv []string, allowStdinName bool) (tokenizeArgs, error) {
	a := tokenizeArgs{jobs: 1}
	for _, s := range argv {
		switch {
		case strings.HasPrefix(s, "--out="):
			a.out = strings.TrimPrefix(s, "--out=")
			continue
		case strings.HasPrefix(s, "--stdin="):
			if !allowStdinName {
				return a, flag.ErrHelp
			}
			a.stdinName = strings.TrimPrefix(s, "--stdin=")
			continue
		case strings.HasPrefix(s, "--grammar="):
			a.grammar = strings.TrimPrefix(s, "--grammar=")
			continue
		case strings.HasPrefix(s, "--jobs="):
			n, err := strconv.Atoi(strings.TrimPrefix(s, "--jobs="))
			if err != nil || n < 1 {
				return a, flag.ErrHelp
			}
			a.jobs = n
			continue
		}
		if strings.HasPrefix(s, "-") && s != "-" {
			return a, flag.ErrHelp
		}
		a.files = append(a.files, s)
	}
	return a, nil
}

// inputsFor labels the run's inputs; no files means stdin.
func inputsFor(a tokenizeArgs) []run.Input {
	if len(a.files) == 0 {
		name := a.stdinName
		if name == "" {
			name = "stdin"
		}
		return []run.Input{{Name: name, Path: "-"}}
	}
	ins := make([]run.Input, 0, len(a.files))
	for _, f := range a.files {
		ins = append(ins, run.Input{Name: f, Path: f})
	}
	return ins
}

/* ---------- output sink ---------- */

// openOut returns the sink for --out; empty or "-" means stdout.
func openOut(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open %s for write: %w", path, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
