package main

import (
	"github.com/samber/do"

	"github.com/ctokenize/ctok/tokenizer/internal/config"
	"github.com/ctokenize/ctok/tokenizer/internal/lexer"
	"github.com/ctokenize/ctok/tokenizer/internal/metrics"
	"github.com/ctokenize/ctok/tokenizer/internal/run"
	"github.com/ctokenize/ctok/tokenizer/internal/vocab"
)

/* ---------- wiring ---------- */

// newInjector registers everything a tokenize run needs. Services are lazy:
// a subcommand only constructs what it invokes, so stats never builds a
// vocabulary counter and vocab never loads more than it must.
func newInjector(grammarPath string, jobs int) *do.Injector {
	inj := do.New()
	do.Provide(inj, func(i *do.Injector) (*lexer.Grammar, error) {
		return config.LoadGrammar(grammarPath)
	})
	do.Provide(inj, func(i *do.Injector) (*metrics.Aggregate, error) {
		return &metrics.Aggregate{}, nil
	})
	do.Provide(inj, func(i *do.Injector) (*vocab.Counter, error) {
		return vocab.NewCounter(), nil
	})
	do.Provide(inj, func(i *do.Injector) (*run.Runner, error) {
		g, err := do.Invoke[*lexer.Grammar](i)
		if err != nil {
			return nil, err
		}
		agg, err := do.Invoke[*metrics.Aggregate](i)
		if err != nil {
			return nil, err
		}
		return &run.Runner{Grammar: g, Agg: agg, Jobs: jobs}, nil
	})
	return inj
}
