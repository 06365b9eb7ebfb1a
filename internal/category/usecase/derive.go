package usecase

import (
	"context"
	"sort"

	itemRepo "planboard/internal/actionitem/repository"
	"planboard/internal/category"
	"planboard/internal/model"
)

// Derive builds the deduplicated category set: one category per real list
// plus one per bracket label mined from item content. Real lists shadow
// virtual categories of the same name.
func (uc *implUseCase) Derive(ctx context.Context, sc model.Scope, input category.DeriveInput) (category.DeriveOutput, error) {
	items, err := uc.repo.ListItems(ctx, itemRepo.ListItemsOptions{FreshFetch: input.FreshFetch})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Derive ListItems: %v", err)
		return category.DeriveOutput{}, err
	}

	lists, err := uc.repo.ListLists(ctx, itemRepo.ListListsOptions{FreshFetch: input.FreshFetch})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Derive ListLists: %v", err)
		return category.DeriveOutput{}, err
	}

	// Virtual label tally from item content.
	contents := make([]string, len(items))
	completed := make([]bool, len(items))
	for i, it := range items {
		contents[i] = it.Content
		completed[i] = it.IsCompleted
	}
	tallies := category.TallyLabels(contents, completed)

	// Per-list item counts.
	listCount := make(map[string]category.Tally)
	for _, it := range items {
		if it.ListID == "" {
			continue
		}
		t := listCount[it.ListID]
		t.Count++
		if it.IsCompleted {
			t.Completed++
		}
		listCount[it.ListID] = t
	}

	// Parent resolution uses the full index, even for lists whose detail
	// fetch fails below.
	nameByID := make(map[string]string, len(lists))
	for _, l := range lists {
		nameByID[l.ID] = l.Name
	}

	var real []model.Category
	realNames := make(map[string]struct{})
	for _, l := range lists {
		detail, derr := uc.repo.GetOneList(ctx, l.ID)
		if derr != nil {
			// Failed detail fetch: log and leave the list out of this pass.
			uc.l.Warnf(ctx, "uc.Derive GetOneList %s: %v", l.ID, derr)
			continue
		}
		if detail.ID == "" {
			continue
		}

		t := listCount[detail.ID]
		real = append(real, model.Category{
			Name:           detail.Name,
			Count:          t.Count,
			CompletedCount: t.Completed,
			IsParent:       detail.IsParent(),
			ParentName:     nameByID[detail.ParentID],
			ListID:         detail.ID,
		})
		realNames[detail.Name] = struct{}{}
	}

	sort.SliceStable(real, func(i, j int) bool {
		li := listOrdinal(lists, real[i].ListID)
		lj := listOrdinal(lists, real[j].ListID)
		if li != lj {
			return li < lj
		}
		return real[i].Name < real[j].Name
	})

	// Candidate parents for the heuristic matcher are the real parent lists.
	var parentNames []string
	for _, c := range real {
		if c.IsParent {
			parentNames = append(parentNames, c.Name)
		}
	}

	var virtual []model.Category
	for label, t := range tallies {
		if _, shadowed := realNames[label]; shadowed {
			continue
		}
		virtual = append(virtual, model.Category{
			Name:           label,
			Count:          t.Count,
			CompletedCount: t.Completed,
			ParentName:     category.InferParent(label, parentNames),
			IsVirtual:      true,
		})
	}
	sort.Slice(virtual, func(i, j int) bool { return virtual[i].Name < virtual[j].Name })

	return category.DeriveOutput{Categories: append(real, virtual...)}, nil
}

func listOrdinal(lists []model.ActionList, id string) int {
	for _, l := range lists {
		if l.ID == id {
			return l.Ordinal
		}
	}
	return 0
}
