// Package config loads alternate lexical grammars from TOML files.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/ctokenize/ctok/tokenizer/internal/lexer"
)

// grammarFile mirrors the on-disk schema:
//
//	keywords = ["if", "else", "while"]
//	punct3   = ["<<=", ">>="]
//	punct2   = ["->", "==", "!="]
//	punct1   = "{}();,"
type grammarFile struct {
	Keywords []string `toml:"keywords"`
	Punct3   []string `toml:"punct3"`
	Punct2   []string `toml:"punct2"`
	Punct1   string   `toml:"punct1"`
}

// LoadGrammar reads a grammar description from path. An empty path selects
// the built-in C11 grammar.
func LoadGrammar(path string) (*lexer.Grammar, error) {
	if path == "" {
		return lexer.DefaultC(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grammar file: %w", err)
	}
	var gf grammarFile
	if err := toml.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("failed to parse grammar file %s: %w", path, err)
	}
	return lexer.NewGrammar(gf.Keywords, gf.Punct3, gf.Punct2, gf.Punct1), nil
}
