package lexer

// Grammar is the injectable lexical configuration: a reserved-word set plus
// the punctuator precedence tables. Injecting it instead of hard-coding
// globals lets the same engine serve related C-like grammars.
type Grammar struct {
	keywords map[string]struct{}
	punct3   []string
	punct2   []string
	punct1   [256]bool
}

// NewGrammar builds a grammar from a keyword list, the 3- and 2-byte
// operator tables, and the set of single punctuation characters.
func NewGrammar(keywords, punct3, punct2 []string, punct1 string) *Grammar {
	g := &Grammar{
		keywords: make(map[string]struct{}, len(keywords)),
		punct3:   append([]string(nil), punct3...),
		punct2:   append([]string(nil), punct2...),
	}
	for _, kw := range keywords {
		g.keywords[kw] = struct{}{}
	}
	for i := 0; i < len(punct1); i++ {
		g.punct1[punct1[i]] = true
	}
	return g
}

// IsKeyword reports whether lexeme exactly matches a reserved word.
// Comparison is case-sensitive over raw bytes.
func (g *Grammar) IsKeyword(lexeme []byte) bool {
	_, ok := g.keywords[string(lexeme)]
	return ok
}

// MatchPunct returns the byte length of the longest punctuator at the start
// of s, or 0 when nothing matches. Three-byte operators win over two-byte
// ones, which win over single characters.
func (g *Grammar) MatchPunct(s []byte) int {
	if len(s) >= 3 {
		for _, p := range g.punct3 {
			if string(s[:3]) == p {
				return 3
			}
		}
	}
	if len(s) >= 2 {
		for _, p := range g.punct2 {
			if string(s[:2]) == p {
				return 2
			}
		}
	}
	if len(s) >= 1 && g.punct1[s[0]] {
		return 1
	}
	return 0
}

// C11 reserved words.
var cKeywords = []string{
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if",
	"inline", "int", "long", "register", "restrict", "return", "short",
	"signed", "sizeof", "static", "struct", "switch", "typedef", "union",
	"unsigned", "void", "volatile", "while", "_Alignas", "_Alignof",
	"_Atomic", "_Bool", "_Complex", "_Generic", "_Imaginary", "_Noreturn",
	"_Static_assert", "_Thread_local",
}

// DefaultC returns the grammar for C11 sources.
func DefaultC() *Grammar {
	return NewGrammar(cKeywords,
		[]string{"<<=", ">>=", "...", "->*"},
		[]string{
			"->", "++", "--", "<<", ">>", "<=", ">=", "==", "!=", "&&", "||",
			"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "::", ".*", "##",
		},
		"{}[]()#;,:?~!%^&*-+=|<>./")
}
