package assistant

import (
	"context"

	"planboard/internal/model"
	"planboard/pkg/suggest"
)

// Suggester produces assistant replies and field suggestions. Satisfied by
// suggest.Manager.
type Suggester interface {
	Suggest(ctx context.Context, req *suggest.Request) (*suggest.Response, error)
}

//go:generate mockery --name UseCase
type UseCase interface {
	CreateSession(ctx context.Context, sc model.Scope, ip CreateSessionInput) (Session, error)
	GetSession(ctx context.Context, sc model.Scope, id string) (Session, error)
	SendMessage(ctx context.Context, sc model.Scope, ip SendMessageInput) (SendMessageOutput, error)
	SetFocus(ctx context.Context, sc model.Scope, ip FocusInput) (Session, error)
	Apply(ctx context.Context, sc model.Scope, sessionID string) (ApplyOutput, error)
	Dismiss(ctx context.Context, sc model.Scope, sessionID string) (Session, error)
}
