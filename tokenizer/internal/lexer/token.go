package lexer

// TokKind enumerates the closed set of token classes. The dispatch order in
// Next makes them mutually exclusive; every input byte lands in exactly one
// token of one of these kinds.
type TokKind int

const (
	TokWS TokKind = iota
	TokNewline
	TokLineComment
	TokBlockComment
	TokPreproc
	TokIdent
	TokKeyword
	TokNumber
	TokString
	TokChar
	TokPunct
)

// NumKinds is the size of the kind set, usable as an array length.
const NumKinds = int(TokPunct) + 1

var kindNames = [NumKinds]string{
	TokWS:           "WS",
	TokNewline:      "NEWLINE",
	TokLineComment:  "LINE_COMMENT",
	TokBlockComment: "BLOCK_COMMENT",
	TokPreproc:      "PREPROC",
	TokIdent:        "IDENT",
	TokKeyword:      "KEYWORD",
	TokNumber:       "NUMBER",
	TokString:       "STRING",
	TokChar:         "CHAR",
	TokPunct:        "PUNCT",
}

// String returns the stable wire name used in stream records and the stats
// summary.
func (k TokKind) String() string {
	if k < 0 || int(k) >= NumKinds {
		return "UNK"
	}
	return kindNames[k]
}

// Token is one lexeme with its exact byte span and source position.
// Lexeme aliases the input buffer; concatenating the lexemes of a file's
// token sequence reproduces the file byte for byte.
type Token struct {
	Kind   TokKind
	Off    int // 0-based byte offset into the source buffer
	Line   int // 1-based
	Col    int // 1-based, reset to 1 after every NEWLINE token
	Lexeme []byte
}
