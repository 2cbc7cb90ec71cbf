// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BoardsColumns holds the columns for the "boards" table.
	BoardsColumns = []*schema.Column{
		{Name: "board_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "columns", Type: field.TypeJSON},
		{Name: "admins", Type: field.TypeJSON},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"active", "closed"}, Default: "active"},
		{Name: "closed_at", Type: field.TypeTime, Nullable: true},
		{Name: "card_limit", Type: field.TypeInt, Nullable: true},
		{Name: "reaction_limit", Type: field.TypeInt, Nullable: true},
		{Name: "creator_hash", Type: field.TypeString},
		{Name: "shareable_link", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BoardsTable holds the schema information for the "boards" table.
	BoardsTable = &schema.Table{
		Name:       "boards",
		Columns:    BoardsColumns,
		PrimaryKey: []*schema.Column{BoardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "board_creator_hash",
				Unique:  false,
				Columns: []*schema.Column{BoardsColumns[8]},
			},
			{
				Name:    "board_state_created_at",
				Unique:  false,
				Columns: []*schema.Column{BoardsColumns[4], BoardsColumns[10]},
			},
		},
	}
	// CardsColumns holds the columns for the "cards" table.
	CardsColumns = []*schema.Column{
		{Name: "card_id", Type: field.TypeString, Unique: true},
		{Name: "board_id", Type: field.TypeString},
		{Name: "column_id", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 5000},
		{Name: "card_type", Type: field.TypeEnum, Enums: []string{"feedback", "action"}},
		{Name: "is_anonymous", Type: field.TypeBool, Default: false},
		{Name: "created_by_hash", Type: field.TypeString},
		{Name: "created_by_alias", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "direct_count", Type: field.TypeInt, Default: 0},
		{Name: "aggregated_count", Type: field.TypeInt, Default: 0},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "linked_feedback_ids", Type: field.TypeJSON, Nullable: true},
	}
	// CardsTable holds the schema information for the "cards" table.
	CardsTable = &schema.Table{
		Name:       "cards",
		Columns:    CardsColumns,
		PrimaryKey: []*schema.Column{CardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "card_board_id",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[1]},
			},
			{
				Name:    "card_board_id_column_id",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[1], CardsColumns[2]},
			},
			{
				Name:    "card_parent_id",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[11]},
			},
			{
				Name:    "card_board_id_created_by_hash_card_type",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[1], CardsColumns[6], CardsColumns[4]},
			},
		},
	}
	// ReactionsColumns holds the columns for the "reactions" table.
	ReactionsColumns = []*schema.Column{
		{Name: "reaction_id", Type: field.TypeString, Unique: true},
		{Name: "card_id", Type: field.TypeString},
		{Name: "identity_hash", Type: field.TypeString},
		{Name: "alias", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ReactionsTable holds the schema information for the "reactions" table.
	ReactionsTable = &schema.Table{
		Name:       "reactions",
		Columns:    ReactionsColumns,
		PrimaryKey: []*schema.Column{ReactionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reaction_card_id_identity_hash",
				Unique:  true,
				Columns: []*schema.Column{ReactionsColumns[1], ReactionsColumns[2]},
			},
			{
				Name:    "reaction_identity_hash",
				Unique:  false,
				Columns: []*schema.Column{ReactionsColumns[2]},
			},
		},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "board_id", Type: field.TypeString},
		{Name: "identity_hash", Type: field.TypeString},
		{Name: "alias", Type: field.TypeString, Size: 50},
		{Name: "last_active", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_board_id_identity_hash",
				Unique:  true,
				Columns: []*schema.Column{UserSessionsColumns[1], UserSessionsColumns[2]},
			},
			{
				Name:    "usersession_board_id_last_active",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[1], UserSessionsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BoardsTable,
		CardsTable,
		ReactionsTable,
		UserSessionsTable,
	}
)

func init() {
}
