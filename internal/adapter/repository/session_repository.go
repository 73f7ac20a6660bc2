package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/defensoria-df/solar-transcricao/internal/domain/entities"
	"github.com/defensoria-df/solar-transcricao/internal/infrastructure/cache"
)

const sessionKeyPrefix = "solar:session:"

// SessionRepository implements the session repository interface on a key-value store
type SessionRepository struct {
	store cache.Store
	ttl   time.Duration
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(store cache.Store, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		store: store,
		ttl:   ttl,
	}
}

// FindByID finds a session by ID
func (r *SessionRepository) FindByID(ctx context.Context, id string) (*entities.WorkflowSession, error) {
	if !entities.IsValidSessionID(id) {
		return nil, entities.ErrInvalidSession
	}

	raw, ok, err := r.store.Get(ctx, sessionKey(id))
	if err != nil {
		return nil, fmt.Errorf("failed to find session by ID: %w", err)
	}
	if !ok {
		return nil, entities.ErrSessionNotFound
	}

	var session entities.WorkflowSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

// Save creates or replaces a session
func (r *SessionRepository) Save(ctx context.Context, session *entities.WorkflowSession) error {
	if session == nil {
		return fmt.Errorf("session cannot be nil")
	}
	if !entities.IsValidSessionID(session.ID) {
		return entities.ErrInvalidSession
	}

	b, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.store.Set(ctx, sessionKey(session.ID), string(b), r.ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes a session
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if !entities.IsValidSessionID(id) {
		return entities.ErrInvalidSession
	}
	if err := r.store.Delete(ctx, sessionKey(id)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}
