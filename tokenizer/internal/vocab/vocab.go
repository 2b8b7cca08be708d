// Package vocab counts identifier and keyword lexemes across a run.
package vocab

import (
	"bufio"
	"fmt"
	"io"
)

// Counter is a content-keyed counting map. Keys compare by exact bytes
// (case-sensitive); entries are created on first sighting and only ever
// incremented during a run. Not safe for uncoordinated concurrent mutation:
// parallel workers keep private shards and Merge them single-writer.
type Counter struct {
	counts map[string]uint64
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[string]uint64)}
}

// Add increments the entry for the exact byte content of lexeme, creating
// it on first sighting.
func (c *Counter) Add(lexeme []byte) {
	c.counts[string(lexeme)]++
}

// Count returns the current count for text, zero when unseen.
func (c *Counter) Count(text string) uint64 { return c.counts[text] }

// Len returns the number of distinct entries.
func (c *Counter) Len() int { return len(c.counts) }

// Merge folds a shard produced elsewhere into c.
func (c *Counter) Merge(other *Counter) {
	for s, n := range other.counts {
		c.counts[s] += n
	}
}

// WriteTSV dumps every entry as "text<TAB>count", one per line. Order is
// unspecified; sorting is a downstream presentation concern.
func (c *Counter) WriteTSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for s, n := range c.counts {
		if _, err := fmt.Fprintf(bw, "%s\t%d\n", s, n); err != nil {
			return err
		}
	}
	return bw.Flush()
}
