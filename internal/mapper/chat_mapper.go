package mapper

import (
	"ai-companion-be/internal/dto"
	"ai-companion-be/internal/entity"
	"ai-companion-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}
	return &entity.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}
	return &model.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
	}
}

// Message Mappers

func (m *ChatMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	return &entity.Message{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Sender:    msg.Sender,
		Content: entity.MessageContent{
			Type:      msg.ContentType,
			Text:      msg.ContentText,
			AudioFile: msg.ContentAudioFile,
			ImageFile: msg.ContentImageFile,
		},
		Timestamp: msg.Timestamp,
		Audio:     msg.Audio,
		Image:     msg.Image,
		Pdf:       msg.Pdf,
	}
}

// DTO Mappers

func (m *ChatMapper) ChatSessionToResponse(s *entity.ChatSession) *dto.ChatSessionResponse {
	if s == nil {
		return nil
	}
	return &dto.ChatSessionResponse{
		Id:        s.Id.String(),
		UserId:    s.UserId.String(),
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
	}
}

func (m *ChatMapper) MessageToResponse(msg *entity.Message) *dto.MessageResponse {
	if msg == nil {
		return nil
	}
	return &dto.MessageResponse{
		Id:        msg.Id.String(),
		SessionId: msg.SessionId.String(),
		Sender:    msg.Sender,
		Content: dto.MessageContentResponse{
			Type: msg.Content.Type,
			Text: msg.Content.Text,
		},
		Timestamp: msg.Timestamp,
		Audio:     msg.Audio,
		Image:     msg.Image,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	return &model.Message{
		Id:               msg.Id,
		SessionId:        msg.SessionId,
		Sender:           msg.Sender,
		ContentType:      msg.Content.Type,
		ContentText:      msg.Content.Text,
		ContentAudioFile: msg.Content.AudioFile,
		ContentImageFile: msg.Content.ImageFile,
		Timestamp:        msg.Timestamp,
		Audio:            msg.Audio,
		Image:            msg.Image,
		Pdf:              msg.Pdf,
	}
}
