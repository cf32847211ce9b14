package contract

import (
	"context"

	"ai-companion-be/internal/entity"

	"github.com/google/uuid"
)

// MessageRepository persists chat messages. Messages are append-only; no
// update operation exists anywhere in this interface.
type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	// FindOne returns nil without error when no message matches.
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Message, error)
	// FindAllBySession returns messages sorted by timestamp ascending,
	// capped at limit.
	FindAllBySession(ctx context.Context, sessionId uuid.UUID, limit int) ([]*entity.Message, error)
	CountBySession(ctx context.Context, sessionId uuid.UUID) (int64, error)
	DeleteBySession(ctx context.Context, sessionId uuid.UUID) error
}
