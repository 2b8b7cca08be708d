package stream

import (
	"bufio"
	"bytes"
	"io"
)

// Reader decodes records from an NDJSON stream. It extracts exactly the
// fields the writer generates, byte-wise, so lexemes that are not valid
// UTF-8 survive the trip. Records are independent: no state carries from
// one line to the next.
type Reader struct {
	br *bufio.Reader

	// Skipped counts lines that had no parsable file/lexeme pair. The
	// reader keeps going past them; callers may report the count.
	Skipped int
}

func NewReader(r io.Reader) *Reader {
	// Record lines can be long: a single block comment or string literal
	// token carries its whole lexeme on one line.
	return &Reader{br: bufio.NewReaderSize(r, 64*1024)}
}

// Next returns the next record. io.EOF signals a clean end of stream.
func (sr *Reader) Next() (Record, error) {
	for {
		line, err := sr.readLine()
		if err != nil {
			return Record{}, err
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		rec, ok := parseRecord(line)
		if !ok {
			sr.Skipped++
			continue
		}
		return rec, nil
	}
}

func (sr *Reader) readLine() ([]byte, error) {
	line, err := sr.br.ReadBytes('\n')
	if err != nil {
		if err == io.EOF && len(line) > 0 {
			return line, nil // final line without a terminator
		}
		return nil, err
	}
	return line, nil
}

func parseRecord(line []byte) (Record, bool) {
	var r Record
	file, ok := stringField(line, `"file":"`)
	if !ok {
		return r, false
	}
	lex, ok := stringField(line, `"lexeme":"`)
	if !ok {
		return r, false
	}
	r.File = string(Unescape(file))
	r.Lexeme = Unescape(lex)
	r.Off = intField(line, `"off":`)
	r.Line = intField(line, `"line":`)
	r.Col = intField(line, `"col":`)
	if kind, ok := stringField(line, `"kind":"`); ok {
		r.Kind = string(kind)
	}
	return r, true
}

// stringField returns the raw, still-escaped bytes of a quoted field. The
// closing quote is the first '"' preceded by an even number of backslashes.
// Searching by key is safe: any occurrence of a key inside a string field
// would carry escaped quotes and cannot match.
func stringField(line []byte, key string) ([]byte, bool) {
	i := bytes.Index(line, []byte(key))
	if i < 0 {
		return nil, false
	}
	s := line[i+len(key):]
	for j := 0; j < len(s); j++ {
		if s[j] != '"' {
			continue
		}
		back := 0
		for k := j - 1; k >= 0 && s[k] == '\\'; k-- {
			back++
		}
		if back%2 == 0 {
			return s[:j], true
		}
	}
	return nil, false
}

func intField(line []byte, key string) int {
	i := bytes.Index(line, []byte(key))
	if i < 0 {
		return 0
	}
	v := 0
	for _, c := range line[i+len(key):] {
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + int(c-'0')
	}
	return v
}
