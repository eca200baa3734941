package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrSourceRootMissing = errors.New("source root directory is missing")
	ErrSourceNotFound    = errors.New("no source directory with the required exports found")
)

// MissingFilesError reports required source files absent from the source directory.
type MissingFilesError struct {
	Dir   string
	Files []string
}

func (e *MissingFilesError) Error() string {
	return fmt.Sprintf("missing source exports in %s: %s", e.Dir, strings.Join(e.Files, ", "))
}

// MissingColumnsError reports required columns absent from present source files.
type MissingColumnsError struct {
	// Columns maps file name to its missing columns.
	Columns map[string][]string
}

func (e *MissingColumnsError) Error() string {
	files := make([]string, 0, len(e.Columns))
	for file := range e.Columns {
		files = append(files, file)
	}
	sort.Strings(files)

	parts := make([]string, 0, len(files))
	for _, file := range files {
		parts = append(parts, fmt.Sprintf("%s (%s)", file, strings.Join(e.Columns[file], ", ")))
	}
	return "missing required columns: " + strings.Join(parts, "; ")
}
