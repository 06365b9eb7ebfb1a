package planner

import (
	"context"

	"planboard/internal/actionitem/repository"
	"planboard/internal/model"
	"planboard/pkg/planapi"
)

// ListLists fetches all action lists.
func (r *implRepository) ListLists(ctx context.Context, opt repository.ListListsOptions) ([]model.ActionList, error) {
	lists, err := r.client.ListActionLists(ctx, opt.FreshFetch)
	if err != nil {
		r.l.Errorf(ctx, "actionitem/repository/planner.ListLists: %v", err)
		return nil, repository.ErrFailedToList
	}

	out := make([]model.ActionList, 0, len(lists))
	for _, l := range lists {
		out = append(out, toModelList(l))
	}
	return out, nil
}

// GetOneList fetches a single list. Not-found maps to a zero-value list.
func (r *implRepository) GetOneList(ctx context.Context, id string) (model.ActionList, error) {
	list, err := r.client.GetActionList(ctx, id)
	if planapi.IsNotFound(err) {
		return model.ActionList{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "actionitem/repository/planner.GetOneList: %v", err)
		return model.ActionList{}, repository.ErrFailedToList
	}
	return toModelList(list), nil
}

func toModelList(l planapi.ActionList) model.ActionList {
	return model.ActionList{
		ID:       l.ID,
		Name:     l.Name,
		ParentID: l.ParentID,
		Ordinal:  l.Ordinal,
	}
}
