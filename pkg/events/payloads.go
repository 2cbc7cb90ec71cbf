package events

import "github.com/retroboardhq/retroboard/pkg/models"

// BoardRenamedPayload is the payload for board:renamed events.
type BoardRenamedPayload struct {
	BoardID string `json:"board_id"`
	Name    string `json:"name"`
}

// ColumnRenamedPayload is the payload for column:renamed events.
type ColumnRenamedPayload struct {
	BoardID  string `json:"board_id"`
	ColumnID string `json:"column_id"`
	Name     string `json:"name"`
}

// BoardClosedPayload is the payload for board:closed events.
type BoardClosedPayload struct {
	BoardID  string `json:"board_id"`
	ClosedAt string `json:"closed_at"` // RFC3339Nano
}

// BoardDeletedPayload is the payload for board:deleted events. It is the last
// frame a room ever sees; clients should drop local state and leave.
type BoardDeletedPayload struct {
	BoardID string `json:"board_id"`
}

// UserJoinedPayload is the payload for user:joined events.
type UserJoinedPayload struct {
	BoardID      string `json:"board_id"`
	IdentityHash string `json:"identity_hash"`
	Alias        string `json:"alias"`
	IsAdmin      bool   `json:"is_admin"`
}

// UserAliasChangedPayload is the payload for user:alias_changed events.
type UserAliasChangedPayload struct {
	BoardID      string `json:"board_id"`
	IdentityHash string `json:"identity_hash"`
	OldAlias     string `json:"old_alias"`
	NewAlias     string `json:"new_alias"`
}

// CardCreatedPayload is the payload for card:created events. The full view is
// embedded so clients render without a follow-up fetch. Anonymous cards carry
// a nil created_by_alias.
type CardCreatedPayload struct {
	BoardID string          `json:"board_id"`
	Card    models.CardView `json:"card"`
}

// CardUpdatedPayload is the payload for card:updated events.
type CardUpdatedPayload struct {
	BoardID string `json:"board_id"`
	CardID  string `json:"card_id"`
	Content string `json:"content"`
}

// CardDeletedPayload is the payload for card:deleted events. OrphanedIDs are
// the former children whose parent_id was cleared by the deletion.
type CardDeletedPayload struct {
	BoardID     string   `json:"board_id"`
	CardID      string   `json:"card_id"`
	OrphanedIDs []string `json:"orphaned_ids,omitempty"`
}

// CardMovedPayload is the payload for card:moved events.
type CardMovedPayload struct {
	BoardID  string `json:"board_id"`
	CardID   string `json:"card_id"`
	ColumnID string `json:"column_id"`
}

// CardLinkedPayload is the payload for card:linked and card:unlinked events.
// For parent_of links SourceAggregatedCount carries the parent's new
// aggregated count.
type CardLinkedPayload struct {
	BoardID               string `json:"board_id"`
	SourceID              string `json:"source_id"`
	TargetID              string `json:"target_id"`
	Kind                  string `json:"kind"` // parent_of, linked_to
	SourceAggregatedCount *int   `json:"source_aggregated_count,omitempty"`
}

// ReactionAddedPayload is the payload for reaction:added events. DirectCount
// and the optional parent counts reflect the card after the mutation; on a
// kind-only update (the identity had already reacted) the counts are
// unchanged.
type ReactionAddedPayload struct {
	BoardID               string `json:"board_id"`
	CardID                string `json:"card_id"`
	IdentityHash          string `json:"identity_hash"`
	Alias                 string `json:"alias"`
	Kind                  string `json:"kind"`
	DirectCount           int    `json:"direct_count"`
	ParentID              *string `json:"parent_id,omitempty"`
	ParentAggregatedCount *int    `json:"parent_aggregated_count,omitempty"`
}

// ReactionRemovedPayload is the payload for reaction:removed events.
type ReactionRemovedPayload struct {
	BoardID               string  `json:"board_id"`
	CardID                string  `json:"card_id"`
	IdentityHash          string  `json:"identity_hash"`
	DirectCount           int     `json:"direct_count"`
	ParentID              *string `json:"parent_id,omitempty"`
	ParentAggregatedCount *int    `json:"parent_aggregated_count,omitempty"`
}
