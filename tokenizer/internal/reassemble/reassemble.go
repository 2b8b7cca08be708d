// Package reassemble rebuilds original files from a token record stream.
package reassemble

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/ctokenize/ctok/tokenizer/internal/stream"
)

// Suffix appended to every reconstructed file.
const Suffix = ".recon"

// Reassembler replays a stream in arrival order, demultiplexing records
// purely by their file label: one lazily-opened output handle per distinct
// label, lexeme bytes appended as records arrive. Same-file records need
// not be contiguous; per-file order is all that matters.
//
// The handle table is owned by the instance and lives for one Run
// invocation; every handle is released on every exit path.
type Reassembler struct {
	outDir string
	files  map[string]*os.File
}

// New returns a reassembler writing under outDir. An empty outDir drops
// each file's base name (plus Suffix) into the working directory.
func New(outDir string) *Reassembler {
	return &Reassembler{outDir: outDir, files: make(map[string]*os.File)}
}

// Run consumes the whole stream. All opened handles are flushed and closed
// before it returns, error or not.
func (ra *Reassembler) Run(r io.Reader) (err error) {
	defer func() {
		if cerr := ra.closeAll(); err == nil {
			err = cerr
		}
	}()
	sr := stream.NewReader(r)
	for {
		rec, rerr := sr.Next()
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("read stream: %w", rerr)
		}
		f, ferr := ra.handleFor(rec.File)
		if ferr != nil {
			return ferr
		}
		if _, werr := f.Write(rec.Lexeme); werr != nil {
			return fmt.Errorf("write %s: %w", f.Name(), werr)
		}
	}
}

func (ra *Reassembler) handleFor(name string) (*os.File, error) {
	target := ra.targetPath(name)
	if f, ok := ra.files[target]; ok {
		return f, nil
	}
	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(target)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", target, err)
	}
	ra.files[target] = f
	return f, nil
}

// targetPath maps a stream file label to its reconstruction path. With an
// output directory the sanitized relative path is kept, subdirectories
// included; without one only the base name lands in the working directory.
func (ra *Reassembler) targetPath(name string) string {
	rel := SanitizePath(name)
	if ra.outDir == "" {
		return path.Base(rel) + Suffix
	}
	return filepath.Join(ra.outDir, rel) + Suffix
}

func (ra *Reassembler) closeAll() error {
	var first error
	for _, f := range ra.files {
		if err := f.Close(); err != nil && first == nil {
			first = fmt.Errorf("close %s: %w", f.Name(), err)
		}
	}
	ra.files = make(map[string]*os.File)
	return first
}
