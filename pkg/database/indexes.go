package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates the JSON containment indexes Ent's schema DSL
// cannot express. The admins GIN index backs the "identity ∈ board.admins"
// predicate used by every admin-conditioned update. The embedded SQL
// migrations already include it for production databases; this exists for
// test schemas created through ent's Schema.Create.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS boards_admins_gin
		ON boards USING GIN (admins jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create admins GIN index: %w", err)
	}

	return nil
}
