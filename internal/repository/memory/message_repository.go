package memory

import (
	"context"
	"sort"
	"sync"

	"ai-companion-be/internal/entity"
	"ai-companion-be/internal/repository/contract"

	"github.com/google/uuid"
)

type MessageRepository struct {
	mu       sync.RWMutex
	messages map[uuid.UUID][]*entity.Message
	byId     map[uuid.UUID]*entity.Message
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		messages: make(map[uuid.UUID][]*entity.Message),
		byId:     make(map[uuid.UUID]*entity.Message),
	}
}

var _ contract.MessageRepository = (*MessageRepository)(nil)

func (r *MessageRepository) Create(_ context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *message
	r.messages[message.SessionId] = append(r.messages[message.SessionId], &copied)
	r.byId[message.Id] = &copied
	return nil
}

func (r *MessageRepository) FindOne(_ context.Context, id uuid.UUID) (*entity.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byId[id]
	if !ok {
		return nil, nil
	}
	copied := *m
	return &copied, nil
}

func (r *MessageRepository) FindAllBySession(_ context.Context, sessionId uuid.UUID, limit int) ([]*entity.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msgs := r.messages[sessionId]
	result := make([]*entity.Message, 0, len(msgs))
	for _, m := range msgs {
		copied := *m
		result = append(result, &copied)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *MessageRepository) CountBySession(_ context.Context, sessionId uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.messages[sessionId])), nil
}

func (r *MessageRepository) DeleteBySession(_ context.Context, sessionId uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.messages[sessionId] {
		delete(r.byId, m.Id)
	}
	delete(r.messages, sessionId)
	return nil
}
