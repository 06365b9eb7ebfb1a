package planner

import (
	"context"
	"time"

	"planboard/internal/actionitem/repository"
	"planboard/internal/model"
	"planboard/pkg/planapi"
)

// CreateItem creates an ActionItem upstream and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.ActionItem, error) {
	item, err := r.client.CreateActionItem(ctx, planapi.CreateActionItemRequest{
		Content: opt.Content,
		ListID:  opt.ListID,
	})
	if err != nil {
		r.l.Errorf(ctx, "actionitem/repository/planner.CreateItem: %v", err)
		return model.ActionItem{}, repository.ErrFailedToCreate
	}
	return toModelItem(item), nil
}

// ListItems fetches action items, optionally scoped to a list.
func (r *implRepository) ListItems(ctx context.Context, opt repository.ListItemsOptions) ([]model.ActionItem, error) {
	items, err := r.client.ListActionItems(ctx, opt.ListID, opt.FreshFetch)
	if err != nil {
		r.l.Errorf(ctx, "actionitem/repository/planner.ListItems: %v", err)
		return nil, repository.ErrFailedToList
	}

	out := make([]model.ActionItem, 0, len(items))
	for _, it := range items {
		out = append(out, toModelItem(it))
	}
	return out, nil
}

// UpdateItem patches an ActionItem upstream. Returns a zero-value item when
// the item does not exist.
func (r *implRepository) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (model.ActionItem, error) {
	item, err := r.client.UpdateActionItem(ctx, opt.ID, planapi.UpdateActionItemRequest{
		Content:     opt.Content,
		IsCompleted: opt.IsCompleted,
		ListID:      opt.ListID,
	})
	if planapi.IsNotFound(err) {
		return model.ActionItem{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "actionitem/repository/planner.UpdateItem: %v", err)
		return model.ActionItem{}, repository.ErrFailedToUpdate
	}
	return toModelItem(item), nil
}

// DeleteItem removes an ActionItem upstream.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	if err := r.client.DeleteActionItem(ctx, id); err != nil {
		if planapi.IsNotFound(err) {
			return nil
		}
		r.l.Errorf(ctx, "actionitem/repository/planner.DeleteItem: %v", err)
		return repository.ErrFailedToDelete
	}
	return nil
}

func toModelItem(it planapi.ActionItem) model.ActionItem {
	return model.ActionItem{
		ID:          it.ID,
		Content:     it.Content,
		IsCompleted: it.IsCompleted,
		ListID:      it.ListID,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
