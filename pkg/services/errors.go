package services

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the service layer. The API layer maps these to
// HTTP status codes; stores never return them directly.
var (
	ErrBoardNotFound    = errors.New("board not found")
	ErrCardNotFound     = errors.New("card not found")
	ErrColumnNotFound   = errors.New("column not found")
	ErrUserNotFound     = errors.New("user session not found")
	ErrReactionNotFound = errors.New("reaction not found")

	// ErrBoardClosed rejects writes against a closed board. Presence
	// operations other than alias changes are exempt.
	ErrBoardClosed = errors.New("board is closed")

	// ErrForbidden is the base authorization failure. ForbiddenError wraps
	// it with the role the operation required.
	ErrForbidden = errors.New("forbidden")

	// ErrCircularRelationship rejects parent links that would form a cycle
	// or exceed the one-level nesting depth.
	ErrCircularRelationship = errors.New("circular card relationship")

	// ErrAlreadyLinked rejects linking a card that already has a parent.
	ErrAlreadyLinked = errors.New("card is already linked to a parent")

	// ErrLimitExceeded is the base quota failure; LimitExceededError wraps
	// it with the counts.
	ErrLimitExceeded = errors.New("limit exceeded")
)

// Quota kinds carried by LimitExceededError.
const (
	LimitKindCards     = "cards"
	LimitKindReactions = "reactions"
)

// ValidationError reports a request field that violates the domain schema.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ForbiddenError reports an authorization failure along with the role the
// operation required (admin, creator, or author).
type ForbiddenError struct {
	RequiredRole string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("forbidden: requires %s role", e.RequiredRole)
}

func (e *ForbiddenError) Unwrap() error { return ErrForbidden }

// LimitExceededError reports a per-user quota failure with the current count
// and the board's effective limit.
type LimitExceededError struct {
	Kind    string
	Current int
	Limit   int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("%s limit exceeded: %d of %d used", e.Kind, e.Current, e.Limit)
}

func (e *LimitExceededError) Unwrap() error { return ErrLimitExceeded }
