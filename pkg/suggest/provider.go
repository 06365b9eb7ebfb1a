package suggest

import "context"

// Provider defines the interface for suggestion backends
type Provider interface {
	// Suggest sends a suggestion request and returns a response
	Suggest(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "planner", "deepseek")
	Name() string
}

// Request represents a normalized suggestion request
type Request struct {
	PlanID    string
	PlanTitle string
	SectionID string
	FieldID   string
	Messages  []Message
}

// Message represents a conversation message
type Message struct {
	Role    string // "user", "assistant"
	Content string
}

// Response represents a normalized suggestion response
type Response struct {
	// Reply is the conversational text shown to the user.
	Reply string

	// FieldID, SectionID, and Content describe the proposed field write.
	// Content empty means the reply carries no actionable suggestion.
	FieldID   string
	SectionID string
	Content   string

	ProviderName string
}

// HasSuggestion reports whether the response proposes a field write.
func (r *Response) HasSuggestion() bool {
	return r != nil && r.Content != ""
}
