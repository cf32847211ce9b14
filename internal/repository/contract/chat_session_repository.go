package contract

import (
	"context"

	"ai-companion-be/internal/entity"

	"github.com/google/uuid"
)

// ChatSessionRepository is the backend-neutral persistence contract for chat
// sessions. Implementations exist for postgres, redis and in-memory storage;
// the backend is picked once at startup by configuration.
type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	// FindOne returns nil without error when no session matches.
	FindOne(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error)
	// FindAll returns sessions newest-created-first, capped at limit.
	// A nil userId disables the owner filter.
	FindAll(ctx context.Context, userId *uuid.UUID, limit int) ([]*entity.ChatSession, error)
	UpdateTitle(ctx context.Context, id uuid.UUID, title string) error
	// Delete reports whether a record existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
