package repository

import "errors"

var (
	ErrFailedToGetConversation  = errors.New("failed to get conversation upstream")
	ErrFailedToSaveConversation = errors.New("failed to save conversation upstream")
)
