package model

import "time"

// MessageRole identifies the author of a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one transcript entry in an assistant conversation.
type Message struct {
	ID        string
	Role      MessageRole
	Text      string
	CreatedAt time.Time
}

// Conversation is the persisted assistant transcript.
type Conversation struct {
	ID       string
	PlanID   string
	Messages []Message
}

// Suggestion is AI-generated text proposed for a business-plan field,
// pending user approval.
type Suggestion struct {
	FieldID   string // raw field id as returned by the provider
	SectionID string
	Content   string
}
