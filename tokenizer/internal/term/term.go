// Package term holds tiny print helpers that ignore (n, err) from fmt so
// linters don't complain about unhandled write results.
package term

import (
	"fmt"
	"io"
	"os"
	"strings"
)

func Printf(format string, a ...any)  { _, _ = fmt.Printf(format, a...) }
func Println(a ...any)                { _, _ = fmt.Println(a...) }
func Eprintf(format string, a ...any) { _, _ = fmt.Fprintf(os.Stderr, format, a...) }
func Eprintln(a ...any)               { _, _ = fmt.Fprintln(os.Stderr, a...) }

// Bprintf writes formatted text into a strings.Builder.
func Bprintf(b *strings.Builder, format string, a ...any) { _, _ = fmt.Fprintf(b, format, a...) }

// Wprintf writes formatted text to any io.Writer.
func Wprintf(w io.Writer, format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }
