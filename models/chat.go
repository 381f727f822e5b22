package models

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one message in a user's conversation with the assistant,
// append-only and ordered by creation time.
type ChatMessage struct {
	ID        string   `json:"_id,omitempty"`
	UserID    string   `json:"user_id"`
	Content   string   `json:"content"`
	Role      ChatRole `json:"role"`
	CreatedAt string   `json:"created_at"`
}

// ChatResponse is returned when a message is sent to the assistant.
type ChatResponse struct {
	Response string `json:"response"`
	Message  string `json:"message,omitempty"`
}
