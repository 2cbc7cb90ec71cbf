package api

import "github.com/retroboardhq/retroboard/pkg/services"

// StatusResponse is the generic acknowledgement body.
type StatusResponse struct {
	Status string `json:"status"`
}

// CardQuotaResponse reports feedback-card usage for the caller.
type CardQuotaResponse struct {
	Current      int  `json:"current"`
	Limit        int  `json:"limit"`
	CanCreate    bool `json:"can_create"`
	LimitEnabled bool `json:"limit_enabled"`
}

// ReactionQuotaResponse reports reaction usage for the caller.
type ReactionQuotaResponse struct {
	Current      int  `json:"current"`
	Limit        int  `json:"limit"`
	CanReact     bool `json:"can_react"`
	LimitEnabled bool `json:"limit_enabled"`
}

// ClearResponse reports what an admin clear or reset removed.
type ClearResponse struct {
	Status string               `json:"status"`
	Stats  *services.ClearStats `json:"stats"`
}

// SeedResponse returns the ids of the cards an admin seed created.
type SeedResponse struct {
	Status  string   `json:"status"`
	CardIDs []string `json:"card_ids"`
}
