package storage

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNotFound indicates no store holds the requested level. It matches
	// fs.ErrNotExist with errors.Is.
	ErrNotFound = fmt.Errorf("storage: level not found: %w", fs.ErrNotExist)
	// ErrReadOnly indicates a store that cannot save.
	ErrReadOnly = errors.New("storage: store is read-only")
	// ErrInvalidLevel indicates a nil level or a level without an ID.
	ErrInvalidLevel = errors.New("storage: invalid level: missing ID")
)
