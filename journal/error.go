package journal

import "errors"

var (
	// ErrEntryNotFound no entry at the given index
	ErrEntryNotFound = errors.New("entry not found")

	// ErrJournalNil journal is nil
	ErrJournalNil = errors.New("journal is nil")

	// ErrFileExists target file already exists and overwrite is false
	ErrFileExists = errors.New("file already exists")
)
