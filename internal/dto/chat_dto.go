package dto

import "time"

// ChatRequest is the parsed multipart form of a chat turn. Exactly one of
// Message, Audio, or Image must be supplied.
type ChatRequest struct {
	SessionId string
	Message   string
	Audio     []byte
	Image     []byte
}

type MessageContentResponse struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type MessageResponse struct {
	Id        string                 `json:"id"`
	SessionId string                 `json:"session_id"`
	Sender    string                 `json:"sender"`
	Content   MessageContentResponse `json:"content"`
	Timestamp time.Time              `json:"timestamp"`
	Audio     *string                `json:"audio,omitempty"`
	Image     *string                `json:"image,omitempty"`
}
