package selection

import (
	"context"

	"planboard/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Get returns the current state for a session, creating an empty one on
	// first use.
	Get(ctx context.Context, sc model.Scope, sessionID string) (StateOutput, error)
	// Select picks a category. Selecting a child category forces its
	// parent's expanded flag true. The category name need not exist in the
	// derived set; an unknown name simply scopes items to no results.
	Select(ctx context.Context, sc model.Scope, input SelectInput) (StateOutput, error)
	// ToggleParent flips a parent category's expanded flag.
	ToggleParent(ctx context.Context, sc model.Scope, input ToggleParentInput) (StateOutput, error)
	// Clear resets to the "All Items" view.
	Clear(ctx context.Context, sc model.Scope, sessionID string) (StateOutput, error)
	// Restore decodes a deep link query string into session state.
	Restore(ctx context.Context, sc model.Scope, sessionID, query string) (StateOutput, error)
}
