package store

import (
	"context"
	"time"

	"ai-companion-be/internal/constant"
	"ai-companion-be/internal/entity"
	"ai-companion-be/internal/pkg/apperror"
	"ai-companion-be/internal/repository/contract"

	"github.com/google/uuid"
)

// MessageStore wraps a MessageRepository with the write-time invariants of
// the message contract, including the first-user-message title derivation.
type MessageStore struct {
	sessions contract.ChatSessionRepository
	messages contract.MessageRepository
}

func NewMessageStore(sessions contract.ChatSessionRepository, messages contract.MessageRepository) *MessageStore {
	return &MessageStore{
		sessions: sessions,
		messages: messages,
	}
}

// Save persists a message. When the sender is the user and no message exists
// yet for the session, the owning session's title is derived from the message
// text as a side effect of the same call. The title update is not atomic with
// the insert; an update lost to a crash is accepted.
func (s *MessageStore) Save(ctx context.Context, message *entity.Message) (*entity.Message, error) {
	if message.SessionId == uuid.Nil {
		return nil, apperror.InvalidArgument("message requires a session_id")
	}

	session, err := s.sessions.FindOne(ctx, message.SessionId)
	if err != nil {
		return nil, apperror.Persistence("failed to verify session", err)
	}
	if session == nil {
		return nil, apperror.NotFound("chat session %s not found", message.SessionId)
	}

	if message.Id == uuid.Nil {
		message.Id = uuid.New()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}

	// Pre-insert count decides first-message title derivation. Two racing
	// first messages can both observe zero; last write wins, no lock.
	count, err := s.messages.CountBySession(ctx, message.SessionId)
	if err != nil {
		return nil, apperror.Persistence("failed to count session messages", err)
	}

	if err := s.messages.Create(ctx, message); err != nil {
		return nil, apperror.Persistence("failed to save message", err)
	}

	if message.Sender == constant.MessageSenderUser && count == 0 {
		title := DeriveSessionTitle(message.Content.Text)
		if err := s.sessions.UpdateTitle(ctx, message.SessionId, title); err != nil {
			return nil, apperror.Persistence("failed to derive session title", err)
		}
	}

	return message, nil
}

// GetMany returns up to limit messages for a session, oldest first. A zero
// limit means DefaultListLimit.
func (s *MessageStore) GetMany(ctx context.Context, sessionId uuid.UUID, limit int) ([]*entity.Message, error) {
	if sessionId == uuid.Nil {
		return nil, apperror.InvalidArgument("session_id must be a non-empty identifier")
	}
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 1 {
		return nil, apperror.InvalidArgument("limit must be a positive integer")
	}

	messages, err := s.messages.FindAllBySession(ctx, sessionId, limit)
	if err != nil {
		return nil, apperror.Persistence("failed to load session messages", err)
	}
	return messages, nil
}

// GetOne returns the message or nil when absent.
func (s *MessageStore) GetOne(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	message, err := s.messages.FindOne(ctx, id)
	if err != nil {
		return nil, apperror.Persistence("failed to load message", err)
	}
	return message, nil
}
