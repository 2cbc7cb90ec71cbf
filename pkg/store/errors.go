// Package store implements collection-style persistence access for boards,
// cards, reactions, and user sessions on top of Ent. Stores return the most
// primitive error kinds; the service layer refines them (e.g. a zero-matched
// conditional update is re-read and classified there).
package store

import (
	"errors"

	"github.com/retroboardhq/retroboard/ent"
)

var (
	// ErrNotFound is returned when an entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicateKey is returned when a write violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key")
)

// wrapNotFound converts Ent's not-found error into the store sentinel.
func wrapNotFound(err error) error {
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}
