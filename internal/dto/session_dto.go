package dto

import "time"

type CreateChatSessionRequest struct {
	Title string `json:"title" validate:"omitempty,max=100"`
}

// UpdateChatSessionRequest carries a partial update. Only the title is
// mutable; unknown keys are dropped without error.
type UpdateChatSessionRequest map[string]string

type ChatSessionResponse struct {
	Id        string    `json:"id"`
	UserId    string    `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type DeleteChatSessionResponse struct {
	Deleted bool `json:"deleted"`
}
