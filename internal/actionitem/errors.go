package actionitem

import "errors"

var (
	ErrItemNotFound = errors.New("action item not found")
	ErrListNotFound = errors.New("action list not found")
	ErrEmptyContent = errors.New("item content is required")
)
