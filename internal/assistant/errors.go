package assistant

import "errors"

var (
	ErrSessionNotFound  = errors.New("assistant session not found")
	ErrEmptyMessage     = errors.New("message text is empty")
	ErrNoPendingSuggest = errors.New("no pending suggestion")
	ErrSuggestionFailed = errors.New("suggestion request failed")
	ErrMissingPlanID    = errors.New("plan id is required")
)
