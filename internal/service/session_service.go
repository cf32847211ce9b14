package service

import (
	"context"
	"encoding/json"

	"ai-companion-be/internal/dto"
	"ai-companion-be/internal/entity"
	"ai-companion-be/internal/mapper"
	"ai-companion-be/internal/pkg/apperror"
	"ai-companion-be/internal/pkg/logger"
	"ai-companion-be/internal/repository/store"
	"ai-companion-be/pkg/events"

	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateChatSessionRequest) (*dto.ChatSessionResponse, error)
	List(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.ChatSessionResponse, error)
	Update(ctx context.Context, userId uuid.UUID, id uuid.UUID, fields map[string]string) (*dto.ChatSessionResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.DeleteChatSessionResponse, error)
}

type sessionService struct {
	sessionStore     *store.SessionStore
	publisherService IPublisherService
	chatMapper       *mapper.ChatMapper
	log              logger.ILogger
}

func NewSessionService(
	sessionStore *store.SessionStore,
	publisherService IPublisherService,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		sessionStore:     sessionStore,
		publisherService: publisherService,
		chatMapper:       mapper.NewChatMapper(),
		log:              log,
	}
}

func (s *sessionService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateChatSessionRequest) (*dto.ChatSessionResponse, error) {
	session, err := s.sessionStore.Create(ctx, userId, req.Title)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NewSessionCreated(session.Id.String(), userId.String()))

	return s.chatMapper.ChatSessionToResponse(session), nil
}

func (s *sessionService) List(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.ChatSessionResponse, error) {
	sessions, err := s.sessionStore.List(ctx, &userId, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ChatSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, s.chatMapper.ChatSessionToResponse(session))
	}
	return responses, nil
}

func (s *sessionService) Update(ctx context.Context, userId uuid.UUID, id uuid.UUID, fields map[string]string) (*dto.ChatSessionResponse, error) {
	if _, err := s.ownedSession(ctx, userId, id); err != nil {
		return nil, err
	}

	session, err := s.sessionStore.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return s.chatMapper.ChatSessionToResponse(session), nil
}

func (s *sessionService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.DeleteChatSessionResponse, error) {
	if _, err := s.ownedSession(ctx, userId, id); err != nil {
		return nil, err
	}

	existed, err := s.sessionStore.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	if existed {
		s.publishEvent(ctx, events.NewSessionDeleted(id.String(), userId.String()))
	}

	return &dto.DeleteChatSessionResponse{Deleted: existed}, nil
}

// ownedSession loads the session and rejects callers that do not own it.
func (s *sessionService) ownedSession(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*entity.ChatSession, error) {
	session, err := s.sessionStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.UserId != userId {
		return nil, apperror.Forbidden("chat session %s does not belong to the caller", id)
	}
	return session, nil
}

// publishEvent pushes a lifecycle event onto the internal queue. Eventing is
// auxiliary; failures are logged, never surfaced to the caller.
func (s *sessionService) publishEvent(ctx context.Context, evt events.Event) {
	if s.publisherService == nil {
		return
	}

	payload, err := json.Marshal(dto.PublishChatEventMessage{
		Type:       evt.EventType(),
		Data:       evt.Payload(),
		OccurredAt: evt.Timestamp(),
	})
	if err != nil {
		s.log.Warn("session", "failed to marshal event", map[string]interface{}{
			"type":  evt.EventType(),
			"error": err.Error(),
		})
		return
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("session", "failed to publish event", map[string]interface{}{
			"type":  evt.EventType(),
			"error": err.Error(),
		})
	}
}
