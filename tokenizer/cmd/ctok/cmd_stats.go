package main

import (
	"github.com/samber/do"

	"github.com/ctokenize/ctok/tokenizer/internal/metrics"
	"github.com/ctokenize/ctok/tokenizer/internal/run"
	"github.com/ctokenize/ctok/tokenizer/internal/term"
)

/* ---------- stats ---------- */

func cmdStats(argv []string) int {
	a, err := parseTokenizeArgs(argv, false)
	if err != nil {
		term.Eprintln("usage: ctok stats [--out=OUT.json] [--grammar=FILE] [--jobs=N] [files...]")
		return 2
	}
	inj := newInjector(a.grammar, a.jobs)
	runner, err := do.Invoke[*run.Runner](inj)
	if err != nil {
		term.Eprintf("stats: %v\n", err)
		return 1
	}
	if err := runner.Run(inputsFor(a)); err != nil {
		term.Eprintf("stats: %v\n", err)
		return 1
	}
	agg := do.MustInvoke[*metrics.Aggregate](inj) // same instance the runner filled
	out, err := openOut(a.out)
	if err != nil {
		term.Eprintf("stats: %v\n", err)
		return 1
	}
	if err := agg.WriteJSON(out); err != nil {
		term.Eprintf("stats: write summary: %v\n", err)
		return 1
	}
	if err := out.Close(); err != nil {
		term.Eprintf("stats: close output: %v\n", err)
		return 1
	}
	return 0
}
