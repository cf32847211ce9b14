package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHAT_RESPONDED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes published on the chat lifecycle topic.
const (
	TypeSessionCreated = "CHAT_SESSION_CREATED"
	TypeSessionDeleted = "CHAT_SESSION_DELETED"
	TypeChatResponded  = "CHAT_RESPONDED"
)

func NewSessionCreated(sessionId, userId string) Event {
	return BaseEvent{
		Type:       TypeSessionCreated,
		Data:       map[string]interface{}{"session_id": sessionId, "user_id": userId},
		OccurredAt: time.Now().UTC(),
	}
}

func NewSessionDeleted(sessionId, userId string) Event {
	return BaseEvent{
		Type:       TypeSessionDeleted,
		Data:       map[string]interface{}{"session_id": sessionId, "user_id": userId},
		OccurredAt: time.Now().UTC(),
	}
}

func NewChatResponded(sessionId, messageId, workflow string) Event {
	return BaseEvent{
		Type: TypeChatResponded,
		Data: map[string]interface{}{
			"session_id": sessionId,
			"message_id": messageId,
			"workflow":   workflow,
		},
		OccurredAt: time.Now().UTC(),
	}
}
