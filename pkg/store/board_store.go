package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"

	"github.com/retroboardhq/retroboard/ent"
	"github.com/retroboardhq/retroboard/ent/board"
	"github.com/retroboardhq/retroboard/ent/predicate"
	"github.com/retroboardhq/retroboard/pkg/models"
)

// BoardStore owns board documents. All conditional writes are single atomic
// UPDATE ... WHERE statements; callers inspect the matched count and re-read
// to classify zero-matched failures.
type BoardStore struct {
	client *ent.Client
}

// NewBoardStore creates a new BoardStore.
func NewBoardStore(client *ent.Client) *BoardStore {
	return &BoardStore{client: client}
}

// CreateBoardParams are the fields persisted on board creation.
type CreateBoardParams struct {
	ID            string
	Name          string
	Columns       []models.Column
	Admins        []string
	CreatorHash   string
	ShareableLink string
	CardLimit     *int
	ReactionLimit *int
	CreatedAt     time.Time
}

// Create inserts a board. Returns ErrDuplicateKey when the shareable link
// collides with an existing board.
func (s *BoardStore) Create(ctx context.Context, p CreateBoardParams) (*ent.Board, error) {
	b, err := s.client.Board.Create().
		SetID(p.ID).
		SetName(p.Name).
		SetColumns(p.Columns).
		SetAdmins(p.Admins).
		SetCreatorHash(p.CreatorHash).
		SetShareableLink(p.ShareableLink).
		SetNillableCardLimit(p.CardLimit).
		SetNillableReactionLimit(p.ReactionLimit).
		SetCreatedAt(p.CreatedAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	return b, nil
}

// Get returns a board by id.
func (s *BoardStore) Get(ctx context.Context, id string) (*ent.Board, error) {
	b, err := s.client.Board.Query().Where(board.ID(id)).Only(ctx)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return b, nil
}

// GetByLink returns a board by its shareable link.
func (s *BoardStore) GetByLink(ctx context.Context, link string) (*ent.Board, error) {
	b, err := s.client.Board.Query().Where(board.ShareableLink(link)).Only(ctx)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return b, nil
}

// Rename updates the board name where the board is active and the caller is
// an admin. Returns the matched row count.
func (s *BoardStore) Rename(ctx context.Context, id, name, adminHash string) (int, error) {
	n, err := s.client.Board.Update().
		Where(
			board.ID(id),
			board.StateEQ(board.StateActive),
			adminsContain(adminHash),
		).
		SetName(name).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to rename board: %w", err)
	}
	return n, nil
}

// UpdateColumns replaces the embedded columns where the board is active and
// the caller is an admin. Returns the matched row count.
func (s *BoardStore) UpdateColumns(ctx context.Context, id, adminHash string, columns []models.Column) (int, error) {
	n, err := s.client.Board.Update().
		Where(
			board.ID(id),
			board.StateEQ(board.StateActive),
			adminsContain(adminHash),
		).
		SetColumns(columns).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to update board columns: %w", err)
	}
	return n, nil
}

// Close transitions an active board to closed. Returns the matched row count;
// zero may mean not-found, already closed, or not an admin.
func (s *BoardStore) Close(ctx context.Context, id, adminHash string, closedAt time.Time) (int, error) {
	n, err := s.client.Board.Update().
		Where(
			board.ID(id),
			board.StateEQ(board.StateActive),
			adminsContain(adminHash),
		).
		SetState(board.StateClosed).
		SetClosedAt(closedAt).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to close board: %w", err)
	}
	return n, nil
}

// Reopen resets a board to the active state and clears closed_at. Used only
// by the administrative back channel.
func (s *BoardStore) Reopen(ctx context.Context, id string) (int, error) {
	n, err := s.client.Board.Update().
		Where(board.ID(id)).
		SetState(board.StateActive).
		ClearClosedAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reopen board: %w", err)
	}
	return n, nil
}

// SetAdmins replaces the admin list. The caller is responsible for the
// creator-only authorization and the set-like append semantics.
func (s *BoardStore) SetAdmins(ctx context.Context, id string, admins []string) (int, error) {
	n, err := s.client.Board.Update().
		Where(board.ID(id)).
		SetAdmins(admins).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to update board admins: %w", err)
	}
	return n, nil
}

// Delete removes the board document itself. Cascading of cards, reactions,
// and sessions is orchestrated by the service layer.
func (s *BoardStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Board.Delete().Where(board.ID(id)).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// adminsContain matches boards whose admins JSON array contains the given
// identity hash. Ent does not generate predicates for JSON fields, so this
// drops down to a sqljson predicate.
func adminsContain(identityHash string) predicate.Board {
	return func(s *sql.Selector) {
		s.Where(sqljson.ValueContains(board.FieldAdmins, identityHash))
	}
}
