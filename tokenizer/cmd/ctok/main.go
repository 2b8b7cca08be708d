package main

import (
	"os"

	"github.com/ctokenize/ctok/tokenizer/internal/term"
	"github.com/ctokenize/ctok/tokenizer/internal/version"
)

/* ---------- main ---------- */

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "version", "--version", "-v":
		term.Printf("%s\n", version.String())
	case "help", "--help", "-h":
		usage()
	case "stream":
		os.Exit(cmdStream(os.Args[2:]))
	case "stats":
		os.Exit(cmdStats(os.Args[2:]))
	case "vocab":
		os.Exit(cmdVocab(os.Args[2:]))
	case "reassemble":
		os.Exit(cmdReassemble(os.Args[2:]))
	case "tokens":
		if len(os.Args) != 3 {
			term.Eprintln("usage: ctok tokens <file>")
			os.Exit(2)
		}
		os.Exit(cmdTokens(os.Args[2]))
	default:
		term.Eprintf("unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}
