package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageContent is the structured payload of a message. Text is always
// present; for audio and image inputs it holds the transcript or caption,
// and AudioFile/ImageFile keep the raw uploaded bytes so the original
// input stays recoverable.
type MessageContent struct {
	Type      string
	Text      string
	AudioFile []byte
	ImageFile []byte
}

// Message is a single turn in a chat session. Messages are immutable once
// stored; there is no update path. Audio, Image and Pdf hold generated
// artifacts as base64 text, attached only to assistant turns whose workflow
// produced them.
type Message struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Sender    string
	Content   MessageContent
	Timestamp time.Time
	Audio     *string
	Image     *string
	Pdf       *string
}
