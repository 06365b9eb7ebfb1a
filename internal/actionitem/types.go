package actionitem

import "planboard/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Content string
	ListID  string
}

type ListInput struct {
	ListID        string
	Category      string // scope by derived category name (list name or bracket label)
	CompletedOnly bool
	PendingOnly   bool
	FreshFetch    bool // bypass upstream caches with the t parameter
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Item model.ActionItem
}

type ListOutput struct {
	Items []model.ActionItem
	Total int
}

type SetCompletedOutput struct {
	Item model.ActionItem
}

type ListTreeOutput struct {
	Lists []model.ActionList
}

type ListDetailOutput struct {
	List  model.ActionList
	Items []model.ActionItem
}
