package models

import "time"

// Card types.
const (
	CardTypeFeedback = "feedback"
	CardTypeAction   = "action"
)

// Link kinds accepted by LinkCards/UnlinkCards.
const (
	LinkKindParentOf = "parent_of"
	LinkKindLinkedTo = "linked_to"
)

// CreateCardInput contains the fields for creating a card. Alias names the
// author on non-anonymous cards; when empty, the author's session alias is
// used instead.
type CreateCardInput struct {
	ColumnID    string `json:"column_id"`
	Content     string `json:"content"`
	CardType    string `json:"card_type"`
	IsAnonymous bool   `json:"is_anonymous"`
	Alias       string `json:"alias,omitempty"`
}

// CardView is a card optionally enriched with its children and the feedback
// cards an action card links to.
type CardView struct {
	ID                 string     `json:"id"`
	BoardID            string     `json:"board_id"`
	ColumnID           string     `json:"column_id"`
	Content            string     `json:"content"`
	CardType           string     `json:"card_type"`
	IsAnonymous        bool       `json:"is_anonymous"`
	CreatedByHash      string     `json:"created_by_hash"`
	CreatedByAlias     *string    `json:"created_by_alias"`
	CreatedAt          time.Time  `json:"created_at"`
	DirectCount        int        `json:"direct_count"`
	AggregatedCount    int        `json:"aggregated_count"`
	ParentID           *string    `json:"parent_id,omitempty"`
	LinkedFeedbackIDs  []string   `json:"linked_feedback_ids,omitempty"`
	Children           []CardView `json:"children,omitempty"`
	LinkedFeedbackCard []CardView `json:"linked_feedback_cards,omitempty"`
}

// CardFilter narrows ListCards results.
type CardFilter struct {
	ColumnID string `json:"column_id,omitempty"`
	CardType string `json:"card_type,omitempty"`
}

// CardListResult is the enriched board card listing.
type CardListResult struct {
	Cards         []CardView     `json:"cards"`
	TotalCount    int            `json:"total_count"`
	CardsByColumn map[string]int `json:"cards_by_column"`
}

// QuotaStatus reports a per-user quota against an optional board limit.
// When the board has no limit, LimitEnabled is false and the operation is
// always allowed.
type QuotaStatus struct {
	Current      int  `json:"current"`
	Limit        int  `json:"limit"`
	Allowed      bool `json:"allowed"`
	LimitEnabled bool `json:"limit_enabled"`
}
