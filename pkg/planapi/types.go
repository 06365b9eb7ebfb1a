package planapi

// Wire types mirror the upstream API's JSON (camelCase, as produced by the
// plan service).

// ActionItem is the upstream action item object.
type ActionItem struct {
	ID          string `json:"id"`
	Content     string `json:"content"`
	IsCompleted bool   `json:"isCompleted"`
	ListID      string `json:"listId,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// CreateActionItemRequest is the body for POST /api/action-items.
type CreateActionItemRequest struct {
	Content string `json:"content"`
	ListID  string `json:"listId,omitempty"`
}

// UpdateActionItemRequest is the body for PATCH /api/action-items/{id}.
// Pointer fields distinguish "unset" from zero values.
type UpdateActionItemRequest struct {
	Content     *string `json:"content,omitempty"`
	IsCompleted *bool   `json:"isCompleted,omitempty"`
	ListID      *string `json:"listId,omitempty"`
}

// ActionList is the upstream list object.
type ActionList struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId,omitempty"`
	Ordinal  int    `json:"ordinal"`
}

// BusinessPlan is the upstream plan object. Content is free-form.
type BusinessPlan struct {
	ID      string                    `json:"id"`
	Title   string                    `json:"title"`
	Status  string                    `json:"status"`
	Content map[string]map[string]any `json:"content"`
}

// SaveSectionRequest is the body for PUT /api/business-plans/{id}/section.
type SaveSectionRequest struct {
	SectionID string         `json:"sectionId"`
	Content   map[string]any `json:"content"`
}

// SuggestContentRequest is the body for POST /api/ai/suggest-content.
type SuggestContentRequest struct {
	PlanID    string    `json:"planId,omitempty"`
	SectionID string    `json:"sectionId,omitempty"`
	FieldID   string    `json:"fieldId,omitempty"`
	Messages  []ChatMsg `json:"messages"`
}

// ChatMsg is one transcript entry sent to the suggestion endpoint.
type ChatMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SuggestContentResponse is the suggestion payload returned upstream.
type SuggestContentResponse struct {
	Reply     string `json:"reply"`
	FieldID   string `json:"fieldId,omitempty"`
	SectionID string `json:"sectionId,omitempty"`
	Content   string `json:"content,omitempty"`
}

// Conversation is the persisted assistant transcript.
type Conversation struct {
	ID       string    `json:"id"`
	PlanID   string    `json:"planId,omitempty"`
	Messages []ChatMsg `json:"messages"`
}
