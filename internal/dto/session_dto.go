package dto

import "compogen/internal/entity"

type CreateSessionRequest struct {
	Title       string `json:"title" validate:"omitempty,max=200"`
	Description string `json:"description" validate:"omitempty"`
}

// UpdateSessionRequest applies presence-of-key semantics: nil fields are
// left untouched, non-nil fields are written even when empty.
type UpdateSessionRequest struct {
	Title         *string               `json:"title" validate:"omitempty,max=200"`
	Description   *string               `json:"description"`
	ChatHistory   *[]entity.ChatMessage `json:"chatHistory"`
	GeneratedCode *entity.GeneratedCode `json:"generatedCode"`
}

type AppendChatRequest struct {
	Role    entity.ChatRole `json:"role" validate:"required,oneof=user assistant"`
	Content string          `json:"content" validate:"required"`
}
