package assistant

import (
	"time"

	"planboard/internal/model"
)

// SessionState tracks where a chat session is in the suggestion cycle.
type SessionState string

const (
	// StateIdle means no request is in flight and nothing is pending.
	StateIdle SessionState = "idle"
	// StateAwaiting means a suggestion request is in flight.
	StateAwaiting SessionState = "awaiting_response"
	// StateSuggestionShown means a suggestion is pending apply or dismiss.
	StateSuggestionShown SessionState = "suggestion_shown"
)

// Session is one assistant conversation bound to a business plan.
type Session struct {
	ID             string
	PlanID         string
	PlanTitle      string
	State          SessionState
	FocusedSection string
	FocusedField   string
	Messages       []model.Message
	Pending        *model.Suggestion
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateSessionInput struct {
	PlanID         string
	FocusedSection string
	FocusedField   string
}

type SendMessageInput struct {
	SessionID string
	Text      string
}

// SendMessageOutput carries the assistant reply. Applied is set when the
// message was recognized as an approval and the pending suggestion was
// written through instead of producing a new reply.
type SendMessageOutput struct {
	Session Session
	Reply   model.Message
	Applied *AppliedSuggestion
}

// AppliedSuggestion records where an accepted suggestion was written.
type AppliedSuggestion struct {
	SectionID string
	FieldID   string
	Content   string
}

type FocusInput struct {
	SessionID string
	SectionID string
	FieldID   string
}

type ApplyOutput struct {
	Session Session
	Applied AppliedSuggestion
}
