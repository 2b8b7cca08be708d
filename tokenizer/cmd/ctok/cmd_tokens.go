package main

import (
	"os"
	"strings"

	"github.com/ctokenize/ctok/tokenizer/internal/lexer"
	"github.com/ctokenize/ctok/tokenizer/internal/term"
)

/* ---------- tokens (debug dump) ---------- */

// cmdTokens prints a readable per-token view, "line:col  KIND  'text'".
// Display only; the lossless surface is the stream subcommand.
func cmdTokens(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		term.Eprintf("tokens: read %s: %v\n", path, err)
		return 1
	}
	var b strings.Builder
	for _, t := range lexer.Lex(src, nil) {
		txt := string(t.Lexeme)
		if len(txt) > 40 {
			txt = txt[:37] + "..."
		}
		txt = strings.ReplaceAll(txt, "\n", "\\n")
		txt = strings.ReplaceAll(txt, "\r", "\\r")
		txt = strings.ReplaceAll(txt, "\t", "\\t")
		term.Bprintf(&b, "%d:%d  %-13s  '%s'\n", t.Line, t.Col, t.Kind, txt)
	}
	term.Printf("%s", b.String())
	return 0
}
