package store

import (
	"context"
	"fmt"
	"time"

	"github.com/retroboardhq/retroboard/ent"
	"github.com/retroboardhq/retroboard/ent/usersession"
)

// SessionStore owns (board, identity) → (alias, last_active) presence
// records, unique on the pair.
type SessionStore struct {
	client *ent.Client
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(client *ent.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Upsert lazily creates the session on first join, or refreshes alias and
// last_active on a repeat join.
func (s *SessionStore) Upsert(ctx context.Context, boardID, identityHash, alias string, now time.Time) (*ent.UserSession, error) {
	sess, err := s.client.UserSession.Create().
		SetID(NewID()).
		SetBoardID(boardID).
		SetIdentityHash(identityHash).
		SetAlias(alias).
		SetLastActive(now).
		SetCreatedAt(now).
		Save(ctx)
	if err == nil {
		return sess, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	_, err = s.client.UserSession.Update().
		Where(
			usersession.BoardID(boardID),
			usersession.IdentityHash(identityHash),
		).
		SetAlias(alias).
		SetLastActive(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh session: %w", err)
	}
	return s.Get(ctx, boardID, identityHash)
}

// Get returns the session for (board, identity).
func (s *SessionStore) Get(ctx context.Context, boardID, identityHash string) (*ent.UserSession, error) {
	sess, err := s.client.UserSession.Query().
		Where(
			usersession.BoardID(boardID),
			usersession.IdentityHash(identityHash),
		).
		Only(ctx)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return sess, nil
}

// Touch refreshes last_active for an existing session. Returns the matched
// row count; zero means no session exists, which callers treat as a no-op.
func (s *SessionStore) Touch(ctx context.Context, boardID, identityHash string, now time.Time) (int, error) {
	n, err := s.client.UserSession.Update().
		Where(
			usersession.BoardID(boardID),
			usersession.IdentityHash(identityHash),
		).
		SetLastActive(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to touch session: %w", err)
	}
	return n, nil
}

// UpdateAlias changes the session alias and refreshes last_active. Returns
// the matched row count.
func (s *SessionStore) UpdateAlias(ctx context.Context, boardID, identityHash, alias string, now time.Time) (int, error) {
	n, err := s.client.UserSession.Update().
		Where(
			usersession.BoardID(boardID),
			usersession.IdentityHash(identityHash),
		).
		SetAlias(alias).
		SetLastActive(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to update session alias: %w", err)
	}
	return n, nil
}

// ActiveSince returns the sessions whose last_active falls inside the
// presence window, oldest joiners first.
func (s *SessionStore) ActiveSince(ctx context.Context, boardID string, cutoff time.Time) ([]*ent.UserSession, error) {
	sessions, err := s.client.UserSession.Query().
		Where(
			usersession.BoardID(boardID),
			usersession.LastActiveGTE(cutoff),
		).
		Order(ent.Asc(usersession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query active sessions: %w", err)
	}
	return sessions, nil
}

// HasActiveSession reports whether the identity has a session on the board
// inside the presence window.
func (s *SessionStore) HasActiveSession(ctx context.Context, boardID, identityHash string, cutoff time.Time) (bool, error) {
	ok, err := s.client.UserSession.Query().
		Where(
			usersession.BoardID(boardID),
			usersession.IdentityHash(identityHash),
			usersession.LastActiveGTE(cutoff),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check active session: %w", err)
	}
	return ok, nil
}

// DeleteByBoard bulk-removes all sessions of a board (cascade step).
func (s *SessionStore) DeleteByBoard(ctx context.Context, boardID string) (int, error) {
	n, err := s.client.UserSession.Delete().
		Where(usersession.BoardID(boardID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete board sessions: %w", err)
	}
	return n, nil
}

// DeleteInactiveBefore removes sessions whose last activity predates the
// retention horizon. Used by the cleanup janitor; presence itself is the
// sliding window, this is storage hygiene only.
func (s *SessionStore) DeleteInactiveBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.UserSession.Delete().
		Where(usersession.LastActiveLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale sessions: %w", err)
	}
	return n, nil
}
