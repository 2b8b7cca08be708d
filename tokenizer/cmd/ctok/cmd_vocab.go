package main

import (
	"github.com/samber/do"

	"github.com/ctokenize/ctok/tokenizer/internal/run"
	"github.com/ctokenize/ctok/tokenizer/internal/term"
	"github.com/ctokenize/ctok/tokenizer/internal/vocab"
)

/* ---------- vocab ---------- */

func cmdVocab(argv []string) int {
	a, err := parseTokenizeArgs(argv, false)
	if err != nil {
		term.Eprintln("usage: ctok vocab [--out=OUT.tsv] [--grammar=FILE] [--jobs=N] [files...]")
		return 2
	}
	inj := newInjector(a.grammar, a.jobs)
	runner, err := do.Invoke[*run.Runner](inj)
	if err != nil {
		term.Eprintf("vocab: %v\n", err)
		return 1
	}
	counter := do.MustInvoke[*vocab.Counter](inj)
	runner.Vocab = counter
	if err := runner.Run(inputsFor(a)); err != nil {
		term.Eprintf("vocab: %v\n", err)
		return 1
	}
	out, err := openOut(a.out)
	if err != nil {
		term.Eprintf("vocab: %v\n", err)
		return 1
	}
	if err := counter.WriteTSV(out); err != nil {
		term.Eprintf("vocab: write entries: %v\n", err)
		return 1
	}
	if err := out.Close(); err != nil {
		term.Eprintf("vocab: close output: %v\n", err)
		return 1
	}
	return 0
}
