package repository

import (
	"context"

	"planboard/internal/model"
)

// Repository persists assistant transcripts upstream.
//
// GetConversation returns the zero value (ID == "") when no transcript
// exists yet; that is not an error.
type Repository interface {
	GetConversation(ctx context.Context, sc model.Scope, id string) (model.Conversation, error)
	SaveConversation(ctx context.Context, sc model.Scope, conv model.Conversation) error
}
