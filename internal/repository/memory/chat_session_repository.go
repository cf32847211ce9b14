package memory

import (
	"context"
	"sort"
	"sync"

	"ai-companion-be/internal/entity"
	"ai-companion-be/internal/repository/contract"

	"github.com/google/uuid"
)

// ChatSessionRepository keeps sessions in process memory. Used by the
// "memory" driver and by tests that need a store without a database.
type ChatSessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entity.ChatSession
}

func NewChatSessionRepository() *ChatSessionRepository {
	return &ChatSessionRepository{
		sessions: make(map[uuid.UUID]*entity.ChatSession),
	}
}

var _ contract.ChatSessionRepository = (*ChatSessionRepository)(nil)

func (r *ChatSessionRepository) Create(_ context.Context, session *entity.ChatSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *session
	r.sessions[session.Id] = &copied
	return nil
}

func (r *ChatSessionRepository) FindOne(_ context.Context, id uuid.UUID) (*entity.ChatSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *ChatSessionRepository) FindAll(_ context.Context, userId *uuid.UUID, limit int) ([]*entity.ChatSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.ChatSession, 0, len(r.sessions))
	for _, s := range r.sessions {
		if userId != nil && s.UserId != *userId {
			continue
		}
		copied := *s
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *ChatSessionRepository) UpdateTitle(_ context.Context, id uuid.UUID, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		s.Title = title
	}
	return nil
}

func (r *ChatSessionRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[id]
	delete(r.sessions, id)
	return ok, nil
}
