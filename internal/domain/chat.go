package domain

// ChatRole identifies which side of the conversation produced a message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn in an AI coaching conversation. The history is an
// ordered, append-only sequence owned by the caller; it is not persisted
// across sessions.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}
