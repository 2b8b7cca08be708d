// Package stream implements the lossless NDJSON token record format.
//
// One record per token:
//
//	{"file":"a.c","off":0,"line":1,"col":1,"kind":"KEYWORD","lexeme":"int"}
//
// Lexemes are raw bytes, not text. Records are therefore built and parsed
// byte-wise rather than through encoding/json, which would replace invalid
// UTF-8 sequences and break the round-trip contract. Only `"`, `\` and a
// handful of control characters are escaped; every other byte value,
// arbitrary 8-bit bytes included, passes through verbatim. NUL escapes as
// \u0000 like any other control byte; lexemes stay length-delimited from
// scan to rebuild.
package stream

import (
	"bufio"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/ctokenize/ctok/tokenizer/internal/lexer"
)

// Record is one row of the stream.
type Record struct {
	File   string
	Off    int
	Line   int
	Col    int
	Kind   string
	Lexeme []byte
}

// Writer emits records to an underlying writer, one line each.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 64*1024)}
}

// WriteToken encodes one token under the given file label.
func (sw *Writer) WriteToken(file string, t lexer.Token) error {
	return sw.WriteRecord(Record{
		File:   file,
		Off:    t.Off,
		Line:   t.Line,
		Col:    t.Col,
		Kind:   t.Kind.String(),
		Lexeme: t.Lexeme,
	})
}

func (sw *Writer) WriteRecord(r Record) error {
	w := sw.w
	_, _ = w.WriteString(`{"file":"`)
	escapeTo(w, []byte(r.File))
	_, _ = w.WriteString(`","off":`)
	_, _ = w.WriteString(strconv.Itoa(r.Off))
	_, _ = w.WriteString(`,"line":`)
	_, _ = w.WriteString(strconv.Itoa(r.Line))
	_, _ = w.WriteString(`,"col":`)
	_, _ = w.WriteString(strconv.Itoa(r.Col))
	_, _ = w.WriteString(`,"kind":"`)
	_, _ = w.WriteString(r.Kind)
	_, _ = w.WriteString(`","lexeme":"`)
	escapeTo(w, r.Lexeme)
	_, err := w.WriteString("\"}\n")
	return err
}

// WriteRaw copies pre-encoded record lines straight through.
func (sw *Writer) WriteRaw(p []byte) error {
	_, err := sw.w.Write(p)
	return err
}

func (sw *Writer) Flush() error { return sw.w.Flush() }

const hexDigits = "0123456789ABCDEF"

func escapeTo(w *bufio.Writer, s []byte) {
	for _, c := range s {
		switch c {
		case '"', '\\':
			_ = w.WriteByte('\\')
			_ = w.WriteByte(c)
		case '\n':
			_, _ = w.WriteString(`\n`)
		case '\r':
			_, _ = w.WriteString(`\r`)
		case '\t':
			_, _ = w.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7F {
				_, _ = w.WriteString(`\u00`)
				_ = w.WriteByte(hexDigits[c>>4])
				_ = w.WriteByte(hexDigits[c&0xF])
			} else {
				_ = w.WriteByte(c)
			}
		}
	}
}

// Unescape reverses the record escaping. An unrecognized escape passes both
// bytes through literally instead of failing, so one mangled record cannot
// abort a whole rebuild.
func Unescape(s []byte) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		c := s[i]
		i++
		if c != '\\' {
			out = append(out, c)
			continue
		}
		if i >= len(s) {
			out = append(out, '\\')
			break
		}
		e := s[i]
		i++
		switch e {
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case '\\', '"', '/':
			out = append(out, e)
		case 'u':
			if i+4 <= len(s) {
				h1, h2 := hexVal(s[i]), hexVal(s[i+1])
				h3, h4 := hexVal(s[i+2]), hexVal(s[i+3])
				if h1 >= 0 && h2 >= 0 && h3 >= 0 && h4 >= 0 {
					code := h1<<12 | h2<<8 | h3<<4 | h4
					if code <= 0xFF {
						out = append(out, byte(code))
					} else {
						out = utf8.AppendRune(out, rune(code))
					}
					i += 4
					break
				}
			}
			out = append(out, '\\', 'u')
		default:
			out = append(out, '\\', e)
		}
	}
	return out
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return 10 + int(c-'a')
	case c >= 'A' && c <= 'F':
		return 10 + int(c-'A')
	}
	return -1
}
