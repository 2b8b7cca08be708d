package main

import (
	"github.com/samber/do"

	"github.com/ctokenize/ctok/tokenizer/internal/run"
	"github.com/ctokenize/ctok/tokenizer/internal/stream"
	"github.com/ctokenize/ctok/tokenizer/internal/term"
)

/* ---------- stream ---------- */

func cmdStream(argv []string) int {
	a, err := parseTokenizeArgs(argv, true)
	if err != nil {
		term.Eprintln("usage: ctok stream [--out=OUT.jsonl] [--stdin=NAME] [--grammar=FILE] [--jobs=N] [files...]")
		return 2
	}
	runner, err := do.Invoke[*run.Runner](newInjector(a.grammar, a.jobs))
	if err != nil {
		term.Eprintf("stream: %v\n", err)
		return 1
	}
	out, err := openOut(a.out)
	if err != nil {
		term.Eprintf("stream: %v\n", err)
		return 1
	}
	runner.Stream = stream.NewWriter(out)
	if err := runner.Run(inputsFor(a)); err != nil {
		term.Eprintf("stream: %v\n", err)
		return 1
	}
	if err := out.Close(); err != nil {
		term.Eprintf("stream: close output: %v\n", err)
		return 1
	}
	return 0
}
