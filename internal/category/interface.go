package category

import (
	"context"

	"planboard/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Derive rebuilds the category set from the current action items and
	// lists. The result is transient — nothing is persisted.
	Derive(ctx context.Context, sc model.Scope, input DeriveInput) (DeriveOutput, error)
}
