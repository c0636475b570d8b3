// Package journal separates recording entries from persisting them: the
// Journal only records, Persistence only saves and loads. Each type keeps
// a single reason to change.
package journal

import (
	"strings"

	"github.com/go-leo/gox/convx"
	"github.com/go-leo/gox/slicex"
)

// Journal records text entries in the order they were added.
type Journal struct {
	entries []string
}

func New() *Journal {
	return &Journal{}
}

// AddEntry appends text and returns the index of the added entry.
func (j *Journal) AddEntry(text string) int {
	j.entries = append(j.entries, text)
	return len(j.entries) - 1
}

// RemoveEntry removes the entry at index. It returns ErrEntryNotFound if
// no entry exists there.
func (j *Journal) RemoveEntry(index int) error {
	if index < 0 || index >= len(j.entries) {
		return ErrEntryNotFound
	}
	j.entries = slicex.DeleteAll(j.entries, index)
	return nil
}

// Len returns the number of entries.
func (j *Journal) Len() int {
	return len(j.entries)
}

// Entries returns a copy of the entries in order.
func (j *Journal) Entries() []string {
	entries := make([]string, len(j.entries))
	copy(entries, j.entries)
	return entries
}

// String numbers each entry on its own line, counting from 1.
func (j *Journal) String() string {
	lines := make([]string, 0, len(j.entries))
	for i, entry := range j.entries {
		lines = append(lines, convx.ToString(i+1)+": "+entry)
	}
	return strings.Join(lines, "\n")
}
