package usecase

import (
	"context"
	"sort"

	"planboard/internal/actionitem"
	repo "planboard/internal/actionitem/repository"
	"planboard/internal/model"
)

// ListTree returns all lists sorted for two-level tree rendering: parents by
// ordinal, each followed by its children by ordinal.
func (uc *implUseCase) ListTree(ctx context.Context, sc model.Scope) (actionitem.ListTreeOutput, error) {
	lists, err := uc.repo.ListLists(ctx, repo.ListListsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTree ListLists: %v", err)
		return actionitem.ListTreeOutput{}, err
	}

	byParent := make(map[string][]model.ActionList)
	var parents []model.ActionList
	for _, l := range lists {
		if l.IsParent() {
			parents = append(parents, l)
			continue
		}
		byParent[l.ParentID] = append(byParent[l.ParentID], l)
	}

	sort.SliceStable(parents, func(i, j int) bool { return parents[i].Ordinal < parents[j].Ordinal })

	ordered := make([]model.ActionList, 0, len(lists))
	for _, p := range parents {
		ordered = append(ordered, p)
		children := byParent[p.ID]
		sort.SliceStable(children, func(i, j int) bool { return children[i].Ordinal < children[j].Ordinal })
		ordered = append(ordered, children...)
	}

	// Orphaned children (parent missing upstream) go last rather than
	// disappearing.
	seen := make(map[string]struct{}, len(ordered))
	for _, l := range ordered {
		seen[l.ID] = struct{}{}
	}
	for _, l := range lists {
		if _, ok := seen[l.ID]; !ok {
			ordered = append(ordered, l)
		}
	}

	return actionitem.ListTreeOutput{Lists: ordered}, nil
}

// ListDetail returns one list and its items. Returns ErrListNotFound when
// the list does not exist upstream.
func (uc *implUseCase) ListDetail(ctx context.Context, sc model.Scope, id string) (actionitem.ListDetailOutput, error) {
	list, err := uc.repo.GetOneList(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListDetail GetOneList: %v", err)
		return actionitem.ListDetailOutput{}, err
	}
	if list.ID == "" {
		return actionitem.ListDetailOutput{}, actionitem.ErrListNotFound
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{ListID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListDetail ListItems: %v", err)
		return actionitem.ListDetailOutput{}, err
	}

	return actionitem.ListDetailOutput{List: list, Items: items}, nil
}
