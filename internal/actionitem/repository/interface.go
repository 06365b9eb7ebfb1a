package repository

import (
	"context"

	"planboard/internal/model"
)

// Repository is the composed interface for the action item data source.
type Repository interface {
	ItemRepository
	ListRepository
}

// ItemRepository defines data access for ActionItem entities.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.ActionItem, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.ActionItem, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.ActionItem, error)
	DeleteItem(ctx context.Context, id string) error
}

// ListRepository defines data access for ActionList entities.
type ListRepository interface {
	ListLists(ctx context.Context, opt ListListsOptions) ([]model.ActionList, error)
	// GetOneList returns a zero-value list (ID == "") when the list does not
	// exist upstream — not-found is not an error.
	GetOneList(ctx context.Context, id string) (model.ActionList, error)
}
