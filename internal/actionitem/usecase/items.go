package usecase

import (
	"context"
	"strings"

	"planboard/internal/actionitem"
	repo "planboard/internal/actionitem/repository"
	"planboard/internal/category"
	"planboard/internal/model"
)

// Create creates a new ActionItem. A leading bracketed label in content is
// preserved as-is; the category engine picks it up on the next derivation.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input actionitem.CreateInput) (actionitem.CreateOutput, error) {
	if strings.TrimSpace(input.Content) == "" {
		return actionitem.CreateOutput{}, actionitem.ErrEmptyContent
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Content: input.Content,
		ListID:  input.ListID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return actionitem.CreateOutput{}, err
	}
	return actionitem.CreateOutput{Item: item}, nil
}

// List returns items scoped by list, completion state, or derived category
// name. A category that matches nothing yields an empty result, not an
// error.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input actionitem.ListInput) (actionitem.ListOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		ListID:     input.ListID,
		FreshFetch: input.FreshFetch,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return actionitem.ListOutput{}, err
	}

	if input.Category != "" {
		items, err = uc.filterByCategory(ctx, items, input.Category)
		if err != nil {
			return actionitem.ListOutput{}, err
		}
	}

	filtered := make([]model.ActionItem, 0, len(items))
	for _, it := range items {
		if input.CompletedOnly && !it.IsCompleted {
			continue
		}
		if input.PendingOnly && it.IsCompleted {
			continue
		}
		filtered = append(filtered, it)
	}

	return actionitem.ListOutput{Items: filtered, Total: len(filtered)}, nil
}

// filterByCategory keeps items whose bracket label matches the category name
// or whose list carries that name.
func (uc *implUseCase) filterByCategory(ctx context.Context, items []model.ActionItem, name string) ([]model.ActionItem, error) {
	lists, err := uc.repo.ListLists(ctx, repo.ListListsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListLists: %v", err)
		return nil, err
	}

	listIDs := make(map[string]struct{})
	for _, l := range lists {
		if l.Name == name {
			listIDs[l.ID] = struct{}{}
		}
	}

	var out []model.ActionItem
	for _, it := range items {
		if label, ok := category.ExtractLabel(it.Content); ok && label == name {
			out = append(out, it)
			continue
		}
		if _, ok := listIDs[it.ListID]; ok && it.ListID != "" {
			out = append(out, it)
		}
	}
	return out, nil
}

// SetCompleted sets the completion flag of an item.
func (uc *implUseCase) SetCompleted(ctx context.Context, sc model.Scope, id string, completed bool) (actionitem.SetCompletedOutput, error) {
	item, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          id,
		IsCompleted: &completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetCompleted UpdateItem: %v", err)
		return actionitem.SetCompletedOutput{}, err
	}
	if item.ID == "" {
		return actionitem.SetCompletedOutput{}, actionitem.ErrItemNotFound
	}
	return actionitem.SetCompletedOutput{Item: item}, nil
}

// Delete removes an item.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}
