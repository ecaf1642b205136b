package domain

// Role identifies the author of a conversation turn. Only two roles exist;
// there is no system role in caller-supplied history.
type Role int

const (
	RoleUser Role = iota
	RoleAssistant
)

// ParseRole maps a caller-supplied role string to a Role. The mapping is
// total: "user" maps to RoleUser and every other string ("assistant",
// "model", or anything unrecognized) maps deterministically to
// RoleAssistant. Unknown roles are not rejected so older frontends that
// send "model" keep working.
func ParseRole(s string) Role {
	if s == "user" {
		return RoleUser
	}
	return RoleAssistant
}

func (r Role) String() string {
	if r == RoleUser {
		return "user"
	}
	return "assistant"
}

// ConversationTurn is a single normalized turn of a conversation.
type ConversationTurn struct {
	Role    Role
	Content string
}

// HistoryItem is the wire form of a conversation turn as supplied by
// callers. The caller is the source of truth for history: the full
// transcript arrives on every chat request and is passed through in order,
// never reordered or deduplicated.
type HistoryItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload accepted by the chat endpoint.
type ChatRequest struct {
	DocumentID string        `json:"document_id"`
	Message    string        `json:"message"`
	History    []HistoryItem `json:"history"`
}

// ChatResponse is the payload returned by the chat endpoint.
type ChatResponse struct {
	Reply string `json:"reply"`
}
