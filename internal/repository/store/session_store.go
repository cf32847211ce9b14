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

const DefaultListLimit = 50

// SessionStore wraps a ChatSessionRepository with the validation and
// cascade-delete rules shared by every backend.
type SessionStore struct {
	sessions contract.ChatSessionRepository
	messages contract.MessageRepository
}

func NewSessionStore(sessions contract.ChatSessionRepository, messages contract.MessageRepository) *SessionStore {
	return &SessionStore{
		sessions: sessions,
		messages: messages,
	}
}

// Create allocates an identifier and persists a session owned by userId.
// An empty title falls back to the "New Chat" placeholder.
func (s *SessionStore) Create(ctx context.Context, userId uuid.UUID, title string) (*entity.ChatSession, error) {
	if title == "" {
		title = constant.DefaultSessionTitle
	}

	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     sanitizeTitle(title),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, apperror.Persistence("failed to create chat session", err)
	}
	return session, nil
}

func (s *SessionStore) Get(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error) {
	session, err := s.sessions.FindOne(ctx, id)
	if err != nil {
		return nil, apperror.Persistence("failed to load chat session", err)
	}
	if session == nil {
		return nil, apperror.NotFound("chat session %s not found", id)
	}
	return session, nil
}

// List returns sessions newest-first. A zero limit means DefaultListLimit;
// a negative limit is rejected.
func (s *SessionStore) List(ctx context.Context, userId *uuid.UUID, limit int) ([]*entity.ChatSession, error) {
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 1 {
		return nil, apperror.InvalidArgument("limit must be a positive integer")
	}

	sessions, err := s.sessions.FindAll(ctx, userId, limit)
	if err != nil {
		return nil, apperror.Persistence("failed to list chat sessions", err)
	}
	return sessions, nil
}

// Update applies an allow-listed field update. Only "title" is mutable; any
// other field in the set is silently dropped, not rejected.
func (s *SessionStore) Update(ctx context.Context, id uuid.UUID, fields map[string]string) (*entity.ChatSession, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	title, ok := fields["title"]
	if !ok {
		return session, nil
	}

	title = sanitizeTitle(title)
	if err := s.sessions.UpdateTitle(ctx, id, title); err != nil {
		return nil, apperror.Persistence("failed to update chat session", err)
	}
	session.Title = title
	return session, nil
}

// Delete removes the session's messages and then the session itself. The two
// deletions are not atomic; a crash in between can leave orphaned messages.
func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := s.messages.DeleteBySession(ctx, id); err != nil {
		return false, apperror.Persistence("failed to delete session messages", err)
	}
	existed, err := s.sessions.Delete(ctx, id)
	if err != nil {
		return false, apperror.Persistence("failed to delete chat session", err)
	}
	return existed, nil
}
