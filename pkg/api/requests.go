package api

import "github.com/retroboardhq/retroboard/pkg/models"

// CreateBoardRequest is the body of POST /api/v1/boards.
type CreateBoardRequest struct {
	Name          string          `json:"name"`
	Columns       []models.Column `json:"columns"`
	CardLimit     *int            `json:"card_limit,omitempty"`
	ReactionLimit *int            `json:"reaction_limit,omitempty"`
}

// RenameRequest renames a board or a column.
type RenameRequest struct {
	Name string `json:"name"`
}

// AddAdminRequest grants admin rights to another participant.
type AddAdminRequest struct {
	IdentityHash string `json:"identity_hash"`
}

// JoinBoardRequest is the body of POST /api/v1/boards/:id/join.
type JoinBoardRequest struct {
	Alias string `json:"alias"`
}

// UpdateAliasRequest is the body of PUT /api/v1/boards/:id/alias.
type UpdateAliasRequest struct {
	Alias string `json:"alias"`
}

// CreateCardRequest is the body of POST /api/v1/boards/:id/cards. Alias is
// optional; authors with a board session fall back to their session alias.
type CreateCardRequest struct {
	ColumnID    string `json:"column_id"`
	Content     string `json:"content"`
	CardType    string `json:"card_type"`
	IsAnonymous bool   `json:"is_anonymous"`
	Alias       string `json:"alias,omitempty"`
}

// UpdateCardRequest is the body of PATCH /api/v1/cards/:id.
type UpdateCardRequest struct {
	Content string `json:"content"`
}

// MoveCardRequest is the body of POST /api/v1/cards/:id/move.
type MoveCardRequest struct {
	ColumnID string `json:"column_id"`
}

// LinkRequest is the body of POST /api/v1/cards/:id/links and /unlink. The
// card in the path is the link source.
type LinkRequest struct {
	TargetID string `json:"target_id"`
	Kind     string `json:"kind"`
}

// AddReactionRequest is the body of POST /api/v1/cards/:id/reactions.
type AddReactionRequest struct {
	Kind  string `json:"kind"`
	Alias string `json:"alias"`
}
