package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one entry in a session's conversation history.
type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// GeneratedCode is the component output attached to a session.
type GeneratedCode struct {
	JSX string `json:"jsx"`
	CSS string `json:"css"`
}

// Session is a user's saved chat/code workspace. Sessions are never hard
// deleted: IsActive false hides them from every query while preserving
// history. UserID is fixed at creation and never reassigned.
type Session struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	User   User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Title       string `gorm:"type:varchar(200);not null;default:'New Session'" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	ChatHistory   datatypes.JSONSlice[ChatMessage]  `json:"chatHistory"`
	GeneratedCode datatypes.JSONType[GeneratedCode] `json:"generatedCode"`

	IsActive     bool      `gorm:"default:true;index" json:"isActive"`
	LastModified time.Time `gorm:"index" json:"lastModified"`

	CreatedAt time.Time `json:"createdAt"`
}

// ValidChatRole reports whether role is one of the two accepted values.
func ValidChatRole(role ChatRole) bool {
	return role == ChatRoleUser || role == ChatRoleAssistant
}
