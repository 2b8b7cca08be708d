package main

import (
	"io"
	"os"
	"strings"

	"github.com/ctokenize/ctok/tokenizer/internal/reassemble"
	"github.com/ctokenize/ctok/tokenizer/internal/term"
)

/* ---------- reassemble ---------- */

func cmdReassemble(argv []string) int {
	var inPath, outDir string
	for _, s := range argv {
		switch {
		case strings.HasPrefix(s, "--in="):
			inPath = strings.TrimPrefix(s, "--in=")
		case strings.HasPrefix(s, "--outdir="):
			outDir = strings.TrimPrefix(s, "--outdir=")
		default:
			term.Eprintln("usage: ctok reassemble --in=STREAM.jsonl [--outdir=DIR]")
			return 2
		}
	}
	if inPath == "" {
		term.Eprintln("usage: ctok reassemble --in=STREAM.jsonl [--outdir=DIR]")
		return 2
	}

	var in io.ReadCloser
	if inPath == "-" {
		in = io.NopCloser(os.Stdin)
	} else {
		f, err := os.Open(inPath)
		if err != nil {
			term.Eprintf("reassemble: open %s: %v\n", inPath, err)
			return 1
		}
		in = f
	}
	err := reassemble.New(outDir).Run(in)
	_ = in.Close()
	if err != nil {
		term.Eprintf("reassemble: %v\n", err)
		return 1
	}
	return 0
}
