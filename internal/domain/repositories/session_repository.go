package repositories

import (
	"context"

	"github.com/defensoria-df/solar-transcricao/internal/domain/entities"
)

// SessionRepository defines the interface for workflow session persistence
type SessionRepository interface {
	// FindByID returns entities.ErrSessionNotFound when the session is unknown or expired
	FindByID(ctx context.Context, id string) (*entities.WorkflowSession, error)

	// Save creates or replaces a session and refreshes its expiration
	Save(ctx context.Context, session *entities.WorkflowSession) error

	// Delete removes a session; deleting an unknown session is not an error
	Delete(ctx context.Context, id string) error
}
