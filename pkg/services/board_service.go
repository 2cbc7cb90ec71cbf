package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/retroboardhq/retroboard/ent/board"
	"github.com/retroboardhq/retroboard/pkg/clock"
	"github.com/retroboardhq/retroboard/pkg/events"
	"github.com/retroboardhq/retroboard/pkg/models"
	"github.com/retroboardhq/retroboard/pkg/store"
)

const (
	maxBoardNameLength  = 200
	maxColumnNameLength = 100
	maxBoardColumns     = 10
)

// BoardService owns board lifecycle: creation with shareable-link retry,
// admin-conditioned renames and close, creator-only admin grants, and the
// cascading delete.
type BoardService struct {
	boards      *store.BoardStore
	cards       *store.CardStore
	reactions   *store.ReactionStore
	sessions    *store.SessionStore
	broadcaster events.Broadcaster
	clk         clock.Clock
	cfg         Config
}

// NewBoardService creates a new BoardService.
func NewBoardService(
	boards *store.BoardStore,
	cards *store.CardStore,
	reactions *store.ReactionStore,
	sessions *store.SessionStore,
	broadcaster events.Broadcaster,
	clk clock.Clock,
	cfg Config,
) *BoardService {
	return &BoardService{
		boards:      boards,
		cards:       cards,
		reactions:   reactions,
		sessions:    sessions,
		broadcaster: broadcaster,
		clk:         clk,
		cfg:         cfg,
	}
}

// CreateBoard creates an active board with the caller as creator and sole
// admin. The shareable link is regenerated on collision, up to the configured
// retry count.
func (s *BoardService) CreateBoard(ctx context.Context, identityHash string, in models.CreateBoardInput) (*models.BoardView, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(name) > maxBoardNameLength {
		return nil, &ValidationError{Field: "name", Message: fmt.Sprintf("must be at most %d characters", maxBoardNameLength)}
	}
	if len(in.Columns) == 0 {
		return nil, &ValidationError{Field: "columns", Message: "at least one column is required"}
	}
	if len(in.Columns) > maxBoardColumns {
		return nil, &ValidationError{Field: "columns", Message: fmt.Sprintf("at most %d columns are allowed", maxBoardColumns)}
	}
	columns := make([]models.Column, len(in.Columns))
	for i, col := range in.Columns {
		colName := strings.TrimSpace(col.Name)
		if colName == "" {
			return nil, &ValidationError{Field: "columns", Message: "column names must not be empty"}
		}
		if col.ID == "" {
			col.ID = store.NewID()
		}
		col.Name = colName
		columns[i] = col
	}
	if in.CardLimit != nil && *in.CardLimit < 1 {
		return nil, &ValidationError{Field: "card_limit", Message: "must be positive"}
	}
	if in.ReactionLimit != nil && *in.ReactionLimit < 1 {
		return nil, &ValidationError{Field: "reaction_limit", Message: "must be positive"}
	}

	now := s.clk.Now()
	for attempt := 0; attempt < s.cfg.ShareableLinkRetryCount; attempt++ {
		b, err := s.boards.Create(ctx, store.CreateBoardParams{
			ID:            store.NewID(),
			Name:          name,
			Columns:       columns,
			Admins:        []string{identityHash},
			CreatorHash:   identityHash,
			ShareableLink: store.NewShareableLink(s.cfg.ShareableLinkLength),
			CardLimit:     in.CardLimit,
			ReactionLimit: in.ReactionLimit,
			CreatedAt:     now,
		})
		if err == nil {
			slog.Info("Board created", "board_id", b.ID)
			return boardView(b, nil), nil
		}
		if !errors.Is(err, store.ErrDuplicateKey) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("failed to allocate a shareable link after %d attempts", s.cfg.ShareableLinkRetryCount)
}

// GetBoard returns the board joined with its currently-active participants.
func (s *BoardService) GetBoard(ctx context.Context, boardID string) (*models.BoardView, error) {
	b, err := s.boards.Get(ctx, boardID)
	if err != nil {
		return nil, mapBoardErr(err)
	}
	users, err := s.activeUsers(ctx, b.ID, b.Admins)
	if err != nil {
		return nil, err
	}
	return boardView(b, users), nil
}

// GetBoardByLink resolves a board through its shareable link.
func (s *BoardService) GetBoardByLink(ctx context.Context, link string) (*models.BoardView, error) {
	b, err := s.boards.GetByLink(ctx, link)
	if err != nil {
		return nil, mapBoardErr(err)
	}
	users, err := s.activeUsers(ctx, b.ID, b.Admins)
	if err != nil {
		return nil, err
	}
	return boardView(b, users), nil
}

// RenameBoard renames an active board. Admin-only.
func (s *BoardService) RenameBoard(ctx context.Context, boardID, identityHash, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(name) > maxBoardNameLength {
		return &ValidationError{Field: "name", Message: fmt.Sprintf("must be at most %d characters", maxBoardNameLength)}
	}

	n, err := s.boards.Rename(ctx, boardID, name, identityHash)
	if err != nil {
		return err
	}
	if n == 0 {
		return s.classifyBoardWriteFailure(ctx, boardID, identityHash)
	}

	touchSession(ctx, s.sessions, s.clk, boardID, identityHash)
	s.broadcaster.BoardRenamed(boardID, events.BoardRenamedPayload{
		BoardID: boardID,
		Name:    name,
	})
	return nil
}

// RenameColumn renames one embedded column on an active board. Admin-only.
// The columns array is replaced as a whole; concurrent column renames resolve
// last-writer-wins.
func (s *BoardService) RenameColumn(ctx context.Context, boardID, identityHash, columnID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(name) > maxColumnNameLength {
		return &ValidationError{Field: "name", Message: fmt.Sprintf("must be at most %d characters", maxColumnNameLength)}
	}

	b, err := s.boards.Get(ctx, boardID)
	if err != nil {
		return mapBoardErr(err)
	}

	columns := make([]models.Column, len(b.Columns))
	copy(columns, b.Columns)
	found := false
	for i := range columns {
		if columns[i].ID == columnID {
			columns[i].Name = name
			found = true
			break
		}
	}
	if !found {
		return ErrColumnNotFound
	}

	n, err := s.boards.UpdateColumns(ctx, boardID, identityHash, columns)
	if err != nil {
		return err
	}
	if n == 0 {
		return s.classifyBoardWriteFailure(ctx, boardID, identityHash)
	}

	touchSession(ctx, s.sessions, s.clk, boardID, identityHash)
	s.broadcaster.ColumnRenamed(boardID, events.ColumnRenamedPayload{
		BoardID:  boardID,
		ColumnID: columnID,
		Name:     name,
	})
	return nil
}

// CloseBoard transitions an active board to closed. Admin-only and
// idempotent: closing an already-closed board succeeds without an event.
func (s *BoardService) CloseBoard(ctx context.Context, boardID, identityHash string) error {
	now := s.clk.Now()
	n, err := s.boards.Close(ctx, boardID, identityHash, now)
	if err != nil {
		return err
	}
	if n == 0 {
		b, err := s.boards.Get(ctx, boardID)
		if err != nil {
			return mapBoardErr(err)
		}
		if !isAdmin(b, identityHash) {
			return &ForbiddenError{RequiredRole: "admin"}
		}
		if b.State == board.StateClosed {
			return nil
		}
		return fmt.Errorf("board close lost a concurrent update, retry")
	}

	slog.Info("Board closed", "board_id", boardID)
	touchSession(ctx, s.sessions, s.clk, boardID, identityHash)
	s.broadcaster.BoardClosed(boardID, events.BoardClosedPayload{
		BoardID:  boardID,
		ClosedAt: now.Format(time.RFC3339Nano),
	})
	return nil
}

// AddAdmin grants admin rights to another participant. Creator-only, the
// target must have an active session on the board, and the append is
// set-like. Allowed on closed boards.
func (s *BoardService) AddAdmin(ctx context.Context, boardID, identityHash, targetHash string) error {
	b, err := s.boards.Get(ctx, boardID)
	if err != nil {
		return mapBoardErr(err)
	}
	if len(b.Admins) == 0 || b.Admins[0] != identityHash {
		return &ForbiddenError{RequiredRole: "creator"}
	}
	for _, a := range b.Admins {
		if a == targetHash {
			return nil
		}
	}

	cutoff := s.clk.Now().Add(-s.cfg.PresenceWindow)
	active, err := s.sessions.HasActiveSession(ctx, boardID, targetHash, cutoff)
	if err != nil {
		return err
	}
	if !active {
		return ErrUserNotFound
	}

	admins := make([]string, len(b.Admins), len(b.Admins)+1)
	copy(admins, b.Admins)
	admins = append(admins, targetHash)
	n, err := s.boards.SetAdmins(ctx, boardID, admins)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBoardNotFound
	}
	touchSession(ctx, s.sessions, s.clk, boardID, identityHash)
	return nil
}

// DeleteBoard removes the board and everything on it. Creator-only; the
// administrative back channel deletes through DeleteBoardAsAdmin instead.
func (s *BoardService) DeleteBoard(ctx context.Context, boardID, identityHash string) error {
	b, err := s.boards.Get(ctx, boardID)
	if err != nil {
		return mapBoardErr(err)
	}
	if b.CreatorHash != identityHash {
		return &ForbiddenError{RequiredRole: "creator"}
	}
	return s.cascadeDelete(ctx, boardID)
}

// DeleteBoardAsAdmin removes the board regardless of creator identity. Used
// by the secret-authenticated administrative back channel.
func (s *BoardService) DeleteBoardAsAdmin(ctx context.Context, boardID string) error {
	if _, err := s.boards.Get(ctx, boardID); err != nil {
		return mapBoardErr(err)
	}
	return s.cascadeDelete(ctx, boardID)
}

// cascadeDelete removes reactions, cards, sessions, then the board, in that
// order. The steps are separate bulk writes, not a transaction: a failed step
// is logged, the remaining steps still run, and the first error is surfaced
// so callers can retry the whole operation.
func (s *BoardService) cascadeDelete(ctx context.Context, boardID string) error {
	var firstErr error
	record := func(step string, err error) {
		slog.Warn("Board delete step failed", "board_id", boardID, "step", step, "error", err)
		if firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", step, err)
		}
	}

	cardIDs, err := s.cards.IDsByBoard(ctx, boardID)
	if err != nil {
		record("list cards", err)
	} else if _, err := s.reactions.DeleteByCards(ctx, cardIDs); err != nil {
		record("delete reactions", err)
	}
	if _, err := s.cards.DeleteByBoard(ctx, boardID); err != nil {
		record("delete cards", err)
	}
	if _, err := s.sessions.DeleteByBoard(ctx, boardID); err != nil {
		record("delete sessions", err)
	}
	if err := s.boards.Delete(ctx, boardID); err != nil && !errors.Is(err, store.ErrNotFound) {
		record("delete board", err)
	}

	if firstErr != nil {
		return fmt.Errorf("board delete incomplete, retry: %w", firstErr)
	}
	slog.Info("Board deleted", "board_id", boardID)
	s.broadcaster.BoardDeleted(boardID, events.BoardDeletedPayload{BoardID: boardID})
	return nil
}

// classifyBoardWriteFailure re-reads the board after a zero-matched
// conditional update and reports the most specific error.
func (s *BoardService) classifyBoardWriteFailure(ctx context.Context, boardID, identityHash string) error {
	b, err := s.boards.Get(ctx, boardID)
	if err != nil {
		return mapBoardErr(err)
	}
	if b.State == board.StateClosed {
		return ErrBoardClosed
	}
	if !isAdmin(b, identityHash) {
		return &ForbiddenError{RequiredRole: "admin"}
	}
	return fmt.Errorf("board update lost a concurrent update, retry")
}

func (s *BoardService) activeUsers(ctx context.Context, boardID string, admins []string) ([]models.ActiveUser, error) {
	cutoff := s.clk.Now().Add(-s.cfg.PresenceWindow)
	sessions, err := s.sessions.ActiveSince(ctx, boardID, cutoff)
	if err != nil {
		return nil, err
	}
	return activeUsersOf(sessions, adminSet(admins)), nil
}
