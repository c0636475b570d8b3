package journal

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
)

// Persistence saves and loads journals as JSON files. It offers no
// durability guarantees beyond what the filesystem provides.
type Persistence struct{}

// SaveToFile writes the journal's entries to filename. Unless overwrite is
// true, an existing file is left untouched and ErrFileExists is returned.
func (p Persistence) SaveToFile(j *Journal, filename string, overwrite bool) error {
	if j == nil {
		return ErrJournalNil
	}
	if !overwrite {
		if _, err := os.Stat(filename); err == nil {
			return ErrFileExists
		}
	}
	data, err := jsoniter.Marshal(j.Entries())
	if err != nil {
		return fmt.Errorf("marshal journal: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}

// LoadFromFile reads a journal previously written by SaveToFile.
func (p Persistence) LoadFromFile(filename string) (*Journal, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	var entries []string
	if err := jsoniter.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal journal: %w", err)
	}
	return &Journal{entries: entries}, nil
}
