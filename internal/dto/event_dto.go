package dto

import "time"

// PublishChatEventMessage is the internal queue envelope bridging chat
// lifecycle events from the in-process bus to NATS.
type PublishChatEventMessage struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}
