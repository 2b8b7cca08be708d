package lexer

// Lexer scans one in-memory buffer into a gapless token sequence. It never
// fails on malformed input: unterminated strings and comments run to end of
// buffer, and any byte no rule claims comes back as a single-byte PUNCT
// token, so every call to Next advances by at least one byte and the
// concatenated lexemes always reproduce the input exactly.
//
// The scanner works on raw bytes, not runes: losslessness is defined over
// bytes, and a NUL or invalid UTF-8 sequence is as valid an input as any
// other.
type Lexer struct {
	src  []byte
	i    int
	line int
	col  int
	g    *Grammar
}

// New returns a lexer over src. A nil grammar selects DefaultC.
func New(src []byte, g *Grammar) *Lexer {
	if g == nil {
		g = DefaultC()
	}
	return &Lexer{src: src, line: 1, col: 1, g: g}
}

// Lex scans src to completion and returns every token in order.
func Lex(src []byte, g *Grammar) []Token {
	lx := New(src, g)
	var out []Token
	for {
		t, ok := lx.Next()
		if !ok {
			break
		}
		out = append(out, t)
	}
	return out
}

// emit closes the token [start, end) and advances the cursor. Only NEWLINE
// tokens move the line counter, so multi-line lexemes (block comments,
// continued preprocessor lines) advance the column by their full length.
func (lx *Lexer) emit(kind TokKind, start, end, line, col int) (Token, bool) {
	lx.col += end - start
	lx.i = end
	return Token{Kind: kind, Off: start, Line: line, Col: col, Lexeme: lx.src[start:end]}, true
}

// Next returns the next token; ok is false only at end of buffer.
func (lx *Lexer) Next() (Token, bool) {
	src, n := lx.src, len(lx.src)
	if lx.i >= n {
		return Token{}, false
	}
	start, startLine, startCol := lx.i, lx.line, lx.col
	c := src[lx.i]

	// Newline: LF, or CR optionally followed by LF, as one token.
	if c == '\n' || c == '\r' {
		end := lx.i + 1
		if c == '\r' && end < n && src[end] == '\n' {
			end++
		}
		lx.i = end
		lx.line++
		lx.col = 1
		return Token{Kind: TokNewline, Off: start, Line: startLine, Col: startCol, Lexeme: src[start:end]}, true
	}

	// Maximal whitespace run, newlines excluded.
	if isSpace(c) {
		j := lx.i + 1
		for j < n && isSpace(src[j]) {
			j++
		}
		return lx.emit(TokWS, start, j, startLine, startCol)
	}

	// Preprocessor line: '#' in column 1. A backslash immediately before the
	// newline continues the logical line, escaped newline included.
	if c == '#' && lx.col == 1 {
		j := lx.i + 1
		for j < n {
			d := src[j]
			if d != '\n' && d != '\r' {
				j++
				continue
			}
			if src[j-1] != '\\' {
				break
			}
			if d == '\r' && j+1 < n && src[j+1] == '\n' {
				j += 2
			} else {
				j++
			}
		}
		return lx.emit(TokPreproc, start, j, startLine, startCol)
	}

	// Comments. A line comment stops before its newline; an unterminated
	// block comment runs to end of buffer and is still emitted.
	if c == '/' && lx.i+1 < n {
		switch src[lx.i+1] {
		case '/':
			j := lx.i + 2
			for j < n && src[j] != '\n' && src[j] != '\r' {
				j++
			}
			return lx.emit(TokLineComment, start, j, startLine, startCol)
		case '*':
			j := lx.i + 2
			for j+1 < n && !(src[j] == '*' && src[j+1] == '/') {
				j++
			}
			if j+1 < n {
				j += 2
			} else {
				j = n
			}
			return lx.emit(TokBlockComment, start, j, startLine, startCol)
		}
	}

	// String and char literals. A backslash escapes the following byte, so
	// an escaped quote does not terminate; unterminated literals run to end
	// of buffer.
	if c == '"' || c == '\'' {
		kind := TokString
		if c == '\'' {
			kind = TokChar
		}
		j := lx.i + 1
		for j < n {
			d := src[j]
			j++
			if d == '\\' {
				if j < n {
					j++
				}
			} else if d == c {
				break
			}
		}
		return lx.emit(kind, start, j, startLine, startCol)
	}

	// Identifier or keyword.
	if isIdentStart(c) {
		j := lx.i + 1
		for j < n && isIdentPart(src[j]) {
			j++
		}
		kind := TokIdent
		if lx.g.IsKeyword(src[start:j]) {
			kind = TokKeyword
		}
		return lx.emit(kind, start, j, startLine, startCol)
	}

	// Number literal: greedy, no well-formedness checks. Hex after 0x/0X,
	// otherwise decimal digits with optional ' separators, fraction and
	// e/E exponent; hex floats take a p/P exponent. A trailing run of
	// letters/underscores is consumed as a suffix.
	if isDigit(c) || (c == '.' && lx.i+1 < n && isDigit(src[lx.i+1])) {
		j := lx.i
		if c == '0' && j+1 < n && (src[j+1] == 'x' || src[j+1] == 'X') {
			j += 2
			for j < n && (isHexDigit(src[j]) || src[j] == '\'') {
				j++
			}
			if j < n && (src[j] == 'p' || src[j] == 'P') {
				j = scanExponent(src, j)
			}
		} else {
			for j < n && (isDigit(src[j]) || src[j] == '\'') {
				j++
			}
			if j < n && src[j] == '.' {
				j++
				for j < n && (isDigit(src[j]) || src[j] == '\'') {
					j++
				}
			}
			if j < n && (src[j] == 'e' || src[j] == 'E') {
				j = scanExponent(src, j)
			}
		}
		for j < n && (isLetter(src[j]) || src[j] == '_') {
			j++
		}
		return lx.emit(TokNumber, start, j, startLine, startCol)
	}

	// Punctuators and operators, longest match first.
	if plen := lx.g.MatchPunct(src[lx.i:]); plen > 0 {
		return lx.emit(TokPunct, start, lx.i+plen, startLine, startCol)
	}

	// Fallback: unknown byte, preserved as a single-byte punctuator.
	return lx.emit(TokPunct, start, lx.i+1, startLine, startCol)
}

// scanExponent consumes the exponent marker at src[j], an optional sign and
// the digit run that follows.
func scanExponent(src []byte, j int) int {
	n := len(src)
	j++
	if j < n && (src[j] == '+' || src[j] == '-') {
		j++
	}
	for j < n && isDigit(src[j]) {
		j++
	}
	return j
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\v' || c == '\f' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
func isLetter(c byte) bool     { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isIdentStart(c byte) bool { return isLetter(c) || c == '_' }
func isIdentPart(c byte) bool  { return isLetter(c) || isDigit(c) || c == '_' }
