package models

// SeedPlan describes the synthetic data the admin back channel writes to a
// board for post-deployment verification.
type SeedPlan struct {
	Cards     []SeedCard     `json:"cards"`
	Reactions []SeedReaction `json:"reactions,omitempty"`
}

// SeedCard is one card to create. CardIndex-based references let reactions
// and parent links target cards created earlier in the same plan.
type SeedCard struct {
	ColumnID    string `json:"column_id"`
	Content     string `json:"content"`
	CardType    string `json:"card_type"`
	IsAnonymous bool   `json:"is_anonymous,omitempty"`
	Alias       string `json:"alias,omitempty"`
	ParentIndex *int   `json:"parent_index,omitempty"`
}

// SeedReaction is one reaction to upsert onto a seeded card.
type SeedReaction struct {
	CardIndex    int    `json:"card_index"`
	IdentityHash string `json:"identity_hash"`
	Alias        string `json:"alias"`
	Kind         string `json:"kind"`
}
