package service

import (
	"context"
	"encoding/json"
	"errors"

	"ai-companion-be/internal/constant"
	"ai-companion-be/internal/dto"
	"ai-companion-be/internal/entity"
	"ai-companion-be/internal/mapper"
	"ai-companion-be/internal/pkg/apperror"
	"ai-companion-be/internal/pkg/logger"
	"ai-companion-be/internal/repository/store"
	"ai-companion-be/pkg/agent"
	"ai-companion-be/pkg/artifact"
	"ai-companion-be/pkg/events"
	"ai-companion-be/pkg/speech"
	"ai-companion-be/pkg/vision"

	"github.com/google/uuid"
)

// Pipeline stages, logged per request for traceability.
const (
	stageReceived         = "RECEIVED"
	stageNormalized       = "NORMALIZED"
	stageAgentInvoked     = "AGENT_INVOKED"
	stageArtifactResolved = "ARTIFACT_RESOLVED"
	stagePersisted        = "PERSISTED"
	stageResponded        = "RESPONDED"
)

type IChatService interface {
	Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.MessageResponse, error)
	GetSessionMessages(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, limit int) ([]*dto.MessageResponse, error)
}

type chatService struct {
	sessionStore     *store.SessionStore
	messageStore     *store.MessageStore
	chatAgent        agent.Agent
	transcriber      speech.Transcriber
	captioner        vision.Captioner
	publisherService IPublisherService
	chatMapper       *mapper.ChatMapper
	log              logger.ILogger
}

func NewChatService(
	sessionStore *store.SessionStore,
	messageStore *store.MessageStore,
	chatAgent agent.Agent,
	transcriber speech.Transcriber,
	captioner vision.Captioner,
	publisherService IPublisherService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessionStore:     sessionStore,
		messageStore:     messageStore,
		chatAgent:        chatAgent,
		transcriber:      transcriber,
		captioner:        captioner,
		publisherService: publisherService,
		chatMapper:       mapper.NewChatMapper(),
		log:              log,
	}
}

// Chat runs one full turn: normalize the input to text, invoke the agent,
// resolve any artifact, persist both turns, and assemble the envelope.
// Completed steps are never rolled back; a failure after the user turn is
// stored leaves it stored.
func (c *chatService) Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.MessageResponse, error) {
	c.logStage(stageReceived, req.SessionId, nil)

	sessionId, err := c.resolveSession(ctx, userId, req)
	if err != nil {
		return nil, err
	}

	text, contentType, err := c.normalizeInput(ctx, req)
	if err != nil {
		return nil, err
	}
	c.logStage(stageNormalized, req.SessionId, map[string]interface{}{"content_type": contentType})

	history, err := c.loadHistory(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	// The raw upload stays on the user turn; the transcript or caption is
	// derived, the input itself must remain recoverable.
	if _, err := c.messageStore.Save(ctx, &entity.Message{
		SessionId: sessionId,
		Sender:    constant.MessageSenderUser,
		Content: entity.MessageContent{
			Type:      contentType,
			Text:      text,
			AudioFile: req.Audio,
			ImageFile: req.Image,
		},
	}); err != nil {
		return nil, err
	}

	result, err := c.chatAgent.Respond(ctx, sessionId.String(), history, text)
	if err != nil {
		return nil, err
	}
	c.logStage(stageAgentInvoked, req.SessionId, map[string]interface{}{"workflow": result.Workflow})

	assistantMsg, err := c.buildAssistantMessage(sessionId, result)
	if err != nil {
		return nil, err
	}
	c.logStage(stageArtifactResolved, req.SessionId, nil)

	persisted, err := c.messageStore.Save(ctx, assistantMsg)
	if err != nil {
		return nil, err
	}
	c.logStage(stagePersisted, req.SessionId, map[string]interface{}{"message_id": persisted.Id.String()})

	c.publishEvent(ctx, events.NewChatResponded(sessionId.String(), persisted.Id.String(), result.Workflow))

	c.logStage(stageResponded, req.SessionId, nil)
	return c.chatMapper.MessageToResponse(persisted), nil
}

func (c *chatService) GetSessionMessages(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, limit int) ([]*dto.MessageResponse, error) {
	session, err := c.sessionStore.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if session.UserId != userId {
		return nil, apperror.Forbidden("chat session %s does not belong to the caller", sessionId)
	}

	messages, err := c.messageStore.GetMany(ctx, sessionId, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		responses = append(responses, c.chatMapper.MessageToResponse(msg))
	}
	return responses, nil
}

// resolveSession parses and loads the target session, enforcing ownership.
func (c *chatService) resolveSession(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (uuid.UUID, error) {
	if req.SessionId == "" {
		return uuid.Nil, apperror.InvalidArgument("session_id is required")
	}
	sessionId, err := uuid.Parse(req.SessionId)
	if err != nil {
		return uuid.Nil, apperror.InvalidArgument("session_id %q is not a valid identifier", req.SessionId)
	}

	session, err := c.sessionStore.Get(ctx, sessionId)
	if err != nil {
		return uuid.Nil, err
	}
	if session.UserId != userId {
		return uuid.Nil, apperror.Forbidden("chat session %s does not belong to the caller", sessionId)
	}
	return sessionId, nil
}

// normalizeInput reduces whichever single modality was supplied to plain
// text. Audio is transcribed; images are captioned in place of the text the
// user did not type.
func (c *chatService) normalizeInput(ctx context.Context, req *dto.ChatRequest) (string, string, error) {
	supplied := 0
	if req.Message != "" {
		supplied++
	}
	if len(req.Audio) > 0 {
		supplied++
	}
	if len(req.Image) > 0 {
		supplied++
	}
	if supplied != 1 {
		return "", "", apperror.InvalidArgument("exactly one of message, audio, or image must be provided")
	}

	switch {
	case len(req.Audio) > 0:
		text, err := c.transcriber.Transcribe(ctx, req.Audio)
		if err != nil {
			return "", "", err
		}
		return text, constant.ContentTypeAudio, nil
	case len(req.Image) > 0:
		text, err := c.captioner.Caption(ctx, req.Image, constant.ImageCaptionPrompt)
		if err != nil {
			return "", "", err
		}
		return text, constant.ContentTypeImage, nil
	default:
		return req.Message, constant.ContentTypeConversation, nil
	}
}

func (c *chatService) loadHistory(ctx context.Context, sessionId uuid.UUID) ([]agent.Turn, error) {
	messages, err := c.messageStore.GetMany(ctx, sessionId, store.DefaultListLimit)
	if err != nil {
		return nil, err
	}

	turns := make([]agent.Turn, 0, len(messages))
	for _, msg := range messages {
		role := "user"
		if msg.Sender == constant.MessageSenderAssistant {
			role = "model"
		}
		turns = append(turns, agent.Turn{Role: role, Text: msg.Content.Text})
	}
	return turns, nil
}

// buildAssistantMessage resolves the agent's artifact into its stored base64
// form and shapes the assistant turn.
func (c *chatService) buildAssistantMessage(sessionId uuid.UUID, result *agent.Result) (*entity.Message, error) {
	msg := &entity.Message{
		SessionId: sessionId,
		Sender:    constant.MessageSenderAssistant,
		Content: entity.MessageContent{
			Type: workflowContentType(result.Workflow),
			Text: result.Text,
		},
	}

	if result.Audio != nil {
		encoded, err := result.Audio.Encode()
		if err != nil {
			if errors.Is(err, artifact.ErrUnsupported) {
				return nil, apperror.UnsupportedArtifact("audio artifact has an unsupported representation")
			}
			return nil, err
		}
		msg.Audio = &encoded
	}

	if result.ImagePath != "" {
		encoded, err := artifact.EncodeImageFile(result.ImagePath)
		if err != nil {
			return nil, apperror.UnsupportedArtifact("image artifact at %s could not be read", result.ImagePath)
		}
		msg.Image = &encoded
	}

	return msg, nil
}

func workflowContentType(workflow string) string {
	switch workflow {
	case constant.WorkflowAudio:
		return constant.ContentTypeAudio
	case constant.WorkflowImage:
		return constant.ContentTypeImage
	default:
		return constant.ContentTypeConversation
	}
}

func (c *chatService) publishEvent(ctx context.Context, evt events.Event) {
	if c.publisherService == nil {
		return
	}

	payload, err := json.Marshal(dto.PublishChatEventMessage{
		Type:       evt.EventType(),
		Data:       evt.Payload(),
		OccurredAt: evt.Timestamp(),
	})
	if err != nil {
		c.log.Warn("chat", "failed to marshal event", map[string]interface{}{
			"type":  evt.EventType(),
			"error": err.Error(),
		})
		return
	}

	if err := c.publisherService.Publish(ctx, payload); err != nil {
		c.log.Warn("chat", "failed to publish event", map[string]interface{}{
			"type":  evt.EventType(),
			"error": err.Error(),
		})
	}
}

func (c *chatService) logStage(stage, sessionId string, details map[string]interface{}) {
	fields := map[string]interface{}{"stage": stage, "session_id": sessionId}
	for k, v := range details {
		fields[k] = v
	}
	c.log.Info("chat", "pipeline stage", fields)
}
