package main

import "github.com/ctokenize/ctok/tokenizer/internal/term"

func usage() {
	term.Eprintln("ctok — lossless C token stream tool")
	term.Eprintln("")
	term.Eprintln("Usage:")
	term.Eprintln("  ctok <command> [args]")
	term.Eprintln("")
	term.Eprintln("Commands:")
	term.Eprintln("  version                                   Print version")
	term.Eprintln("  help                                      Show this help")
	term.Eprintln("  stream [--out=OUT.jsonl] [--stdin=NAME] [--grammar=FILE] [--jobs=N] [files...]")
	term.Eprintln("                                            Tokenize files to a lossless JSONL stream")
	term.Eprintln("  stats  [--out=OUT.json] [--grammar=FILE] [--jobs=N] [files...]")
	term.Eprintln("                                            Emit corpus metrics as one JSON object")
	term.Eprintln("  vocab  [--out=OUT.tsv] [--grammar=FILE] [--jobs=N] [files...]")
	term.Eprintln("                                            Emit identifier/keyword frequencies as TSV")
	term.Eprintln("  reassemble --in=STREAM.jsonl [--outdir=DIR]")
	term.Eprintln("                                            Rebuild original files from a stream")
	term.Eprintln("  tokens <file>                             Print a readable token dump (debug)")
	term.Eprintln("")
	term.Eprintln("Notes:")
	term.Eprintln("  - With no input files, stream/stats/vocab read stdin; --stdin=NAME sets the record label.")
	term.Eprintln("  - --out=- writes to stdout (the default); --in=- reads from stdin.")
	term.Eprintln("  - Reconstructed files get a .recon suffix; without --outdir only base names land in the CWD.")
	term.Eprintln("  - --grammar=FILE swaps in an alternate keyword/punctuator set (TOML).")
}
