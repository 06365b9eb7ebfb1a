package usecase

import (
	"context"

	"planboard/internal/category"
	"planboard/internal/model"
	"planboard/internal/selection"
)

func output(s selection.State) selection.StateOutput {
	return selection.StateOutput{
		State:    s,
		DeepLink: selection.EncodeDeepLink(s),
	}
}

// Get returns the session's current state.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, sessionID string) (selection.StateOutput, error) {
	return output(uc.store.Get(sessionID)), nil
}

// Select picks a category. When the selected category is a child, its
// parent's expanded flag is forced true so the sidebar cannot hide the
// selection.
func (uc *implUseCase) Select(ctx context.Context, sc model.Scope, input selection.SelectInput) (selection.StateOutput, error) {
	parent := uc.resolveParent(ctx, sc, input.Category)

	state := uc.store.Update(input.SessionID, func(s selection.State) selection.State {
		s.SelectedCategory = input.Category
		s.SelectedListID = input.ListID
		if parent != "" {
			s.ShowChildren = true
			if !s.IsExpanded(parent) {
				s.ExpandedParents = append(s.ExpandedParents, parent)
			}
		}
		return s
	})
	return output(state), nil
}

// resolveParent finds the parent name of a category, or "" when the
// category is unknown or unparented. A failed derivation is logged and
// treated as "no parent" — selection must not fail because counts are
// stale.
func (uc *implUseCase) resolveParent(ctx context.Context, sc model.Scope, name string) string {
	if name == "" {
		return ""
	}

	derived, err := uc.categoryUC.Derive(ctx, sc, category.DeriveInput{})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Select Derive: %v", err)
		return ""
	}
	for _, c := range derived.Categories {
		if c.Name == name {
			return c.ParentName
		}
	}
	return ""
}

// ToggleParent flips a parent's expanded flag.
func (uc *implUseCase) ToggleParent(ctx context.Context, sc model.Scope, input selection.ToggleParentInput) (selection.StateOutput, error) {
	state := uc.store.Update(input.SessionID, func(s selection.State) selection.State {
		if s.IsExpanded(input.Parent) {
			kept := make([]string, 0, len(s.ExpandedParents))
			for _, p := range s.ExpandedParents {
				if p != input.Parent {
					kept = append(kept, p)
				}
			}
			s.ExpandedParents = kept
		} else {
			s.ExpandedParents = append(s.ExpandedParents, input.Parent)
		}
		return s
	})
	return output(state), nil
}

// Clear resets the session to the "All Items" view: no selection, no
// expanded parents, no children shown.
func (uc *implUseCase) Clear(ctx context.Context, sc model.Scope, sessionID string) (selection.StateOutput, error) {
	state := uc.store.Update(sessionID, func(s selection.State) selection.State {
		return selection.State{SessionID: sessionID}
	})
	return output(state), nil
}

// Restore replaces the session state with one decoded from a deep link.
func (uc *implUseCase) Restore(ctx context.Context, sc model.Scope, sessionID, query string) (selection.StateOutput, error) {
	decoded := selection.DecodeDeepLink(query)

	// Re-run the child rule so a restored child selection lands with its
	// parent expanded.
	parent := uc.resolveParent(ctx, sc, decoded.SelectedCategory)

	state := uc.store.Update(sessionID, func(s selection.State) selection.State {
		decoded.SessionID = sessionID
		if parent != "" {
			decoded.ShowChildren = true
			decoded.ExpandedParents = []string{parent}
		}
		return decoded
	})
	return output(state), nil
}
