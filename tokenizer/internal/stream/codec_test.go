package stream

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/ctokenize/ctok/tokenizer/internal/lexer"
)

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte("plain"),
		[]byte(`quotes " and \ slashes`),
		[]byte("tabs\tnewlines\nreturns\r"),
		{0x00, 0x01, 0x1F, 0x7F, 0x80, 0xFE, 0xFF},
		[]byte("mixed \x00 nul inside"),
		nil,
	}
	for _, in := range inputs {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		if err := w.WriteRecord(Record{File: "f", Kind: "PUNCT", Lexeme: in}); err != nil {
			t.Fatalf("write: %v", err)
		}
		if err := w.Flush(); err != nil {
			t.Fatalf("flush: %v", err)
		}
		line := buf.Bytes()
		if i := bytes.IndexByte(line[:len(line)-1], '\n'); i >= 0 {
			t.Fatalf("record for %q spans multiple lines: %q", in, line)
		}
		rec, err := NewReader(&buf).Next()
		if err != nil {
			t.Fatalf("read back %q: %v", in, err)
		}
		if !bytes.Equal(rec.Lexeme, in) {
			t.Fatalf("lexeme round-trip: got %q, want %q", rec.Lexeme, in)
		}
	}
}

func TestRecordFields(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	toks := lexer.Lex([]byte("int x;\n"), nil)
	for _, tok := range toks {
		if err := w.WriteToken("dir/a.c", tok); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	r := NewReader(&buf)
	for i, tok := range toks {
		rec, err := r.Next()
		if err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
		if rec.File != "dir/a.c" {
			t.Fatalf("record %d file = %q", i, rec.File)
		}
		if rec.Off != tok.Off || rec.Line != tok.Line || rec.Col != tok.Col {
			t.Fatalf("record %d position = %d/%d:%d, want %d/%d:%d",
				i, rec.Off, rec.Line, rec.Col, tok.Off, tok.Line, tok.Col)
		}
		if rec.Kind != tok.Kind.String() {
			t.Fatalf("record %d kind = %q, want %q", i, rec.Kind, tok.Kind)
		}
		if !bytes.Equal(rec.Lexeme, tok.Lexeme) {
			t.Fatalf("record %d lexeme = %q, want %q", i, rec.Lexeme, tok.Lexeme)
		}
	}
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestUnescapeLenient(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`\n\r\t\b\f\\\"\/`, "\n\r\t\b\f\\\"/"},
		{`\u0000`, "\x00"},
		{`\u00ff`, "\xff"},
		{`A`, "A"},
		{`\q`, `\q`},       // unknown escape passes through literally
		{`\uZZ00`, `\uZZ00`}, // malformed hex kept as-is
		{`\u00`, `\u00`},   // truncated unicode escape
		{`tail\`, "tail\\"},
	}
	for _, c := range cases {
		if got := string(Unescape([]byte(c.in))); got != c.want {
			t.Fatalf("Unescape(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestReaderSkipsGarbage(t *testing.T) {
	in := strings.Join([]string{
		"not json at all",
		`{"file":"a.c","off":0,"line":1,"col":1,"kind":"IDENT","lexeme":"x"}`,
		"",
		`{"off":9}`,
		`{"file":"a.c","off":1,"line":1,"col":2,"kind":"PUNCT","lexeme":";"}`,
	}, "\n") // no trailing newline on purpose

	r := NewReader(strings.NewReader(in))
	var lexemes []string
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		lexemes = append(lexemes, string(rec.Lexeme))
	}
	if len(lexemes) != 2 || lexemes[0] != "x" || lexemes[1] != ";" {
		t.Fatalf("lexemes = %q", lexemes)
	}
	if r.Skipped != 2 {
		t.Fatalf("Skipped = %d, want 2", r.Skipped)
	}
}

func TestFieldKeyInsideLexeme(t *testing.T) {
	// a lexeme that contains something shaped like a field key must not
	// confuse the parser: its quotes arrive escaped
	lex := []byte(`"file":"fake","lexeme":"x"`)
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteRecord(Record{File: "real.c", Kind: "STRING", Lexeme: lex}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	rec, err := NewReader(&buf).Next()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if rec.File != "real.c" {
		t.Fatalf("file = %q, want real.c", rec.File)
	}
	if !bytes.Equal(rec.Lexeme, lex) {
		t.Fatalf("lexeme = %q, want %q", rec.Lexeme, lex)
	}
}
