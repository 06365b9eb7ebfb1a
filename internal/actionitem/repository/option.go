package repository

// CreateItemOptions holds parameters for creating a new ActionItem.
type CreateItemOptions struct {
	Content string
	ListID  string
}

// ListItemsOptions holds filter parameters for listing ActionItems.
type ListItemsOptions struct {
	ListID     string
	FreshFetch bool // append the cache-buster to the upstream request
}

// UpdateItemOptions holds parameters for patching an ActionItem. Nil pointer
// fields are left untouched upstream.
type UpdateItemOptions struct {
	ID          string
	Content     *string
	IsCompleted *bool
	ListID      *string
}

// ListListsOptions holds parameters for listing ActionLists.
type ListListsOptions struct {
	FreshFetch bool
}
