// Package models defines the wire-level views and inputs shared by the
// store, service, and API layers. It deliberately has no dependency on the
// generated Ent code: Column is embedded in the Board schema as a JSON field,
// so anything here must be importable from ent/schema.
package models

import "time"

// Column is a board column, embedded in the board document.
type Column struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// CreateBoardInput contains the fields for creating a board.
type CreateBoardInput struct {
	Name          string   `json:"name"`
	Columns       []Column `json:"columns"`
	CardLimit     *int     `json:"card_limit,omitempty"`
	ReactionLimit *int     `json:"reaction_limit,omitempty"`
}

// ActiveUser is a participant whose session falls inside the presence window.
type ActiveUser struct {
	IdentityHash string    `json:"identity_hash"`
	Alias        string    `json:"alias"`
	IsAdmin      bool      `json:"is_admin"`
	LastActive   time.Time `json:"last_active"`
}

// BoardView is a board joined with its currently-active participants.
type BoardView struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Columns       []Column     `json:"columns"`
	Admins        []string     `json:"admins"`
	State         string       `json:"state"`
	ClosedAt      *time.Time   `json:"closed_at,omitempty"`
	CardLimit     *int         `json:"card_limit,omitempty"`
	ReactionLimit *int         `json:"reaction_limit,omitempty"`
	CreatorHash   string       `json:"creator_hash"`
	ShareableLink string       `json:"shareable_link"`
	CreatedAt     time.Time    `json:"created_at"`
	ActiveUsers   []ActiveUser `json:"active_users"`
}

// JoinResult is returned by PresenceService.Join.
type JoinResult struct {
	BoardID      string `json:"board_id"`
	IdentityHash string `json:"identity_hash"`
	Alias        string `json:"alias"`
	IsAdmin      bool   `json:"is_admin"`
}
