package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId        uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_session_ts,priority:1"`
	Sender           string    `gorm:"type:text;not null"`
	ContentType      string    `gorm:"type:text;not null"`
	ContentText      string    `gorm:"type:text;not null"`
	ContentAudioFile []byte    `gorm:"type:bytea"`
	ContentImageFile []byte    `gorm:"type:bytea"`
	Timestamp        time.Time `gorm:"index:idx_messages_session_ts,priority:2"`
	Audio            *string   `gorm:"type:text"`
	Image            *string   `gorm:"type:text"`
	Pdf              *string   `gorm:"type:text"`
}

func (Message) TableName() string {
	return "messages"
}
