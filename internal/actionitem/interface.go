package actionitem

import (
	"context"

	"planboard/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Items
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	SetCompleted(ctx context.Context, sc model.Scope, id string, completed bool) (SetCompletedOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Lists
	ListTree(ctx context.Context, sc model.Scope) (ListTreeOutput, error)
	ListDetail(ctx context.Context, sc model.Scope, id string) (ListDetailOutput, error)
}
