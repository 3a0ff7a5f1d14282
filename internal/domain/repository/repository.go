// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the use cases and the document store.
package repository

import "errors"

var (
	// ErrNotFound is returned when no document matches the lookup.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateKey is returned when a unique index rejects a write.
	ErrDuplicateKey = errors.New("duplicate key")
)

// ListFilter narrows list queries. Zero values mean no constraint.
type ListFilter struct {
	Search   string // case-insensitive match on the display fields
	Status   string
	Type     string
	Category string
	Limit    int64
	Skip     int64
}
