package repository

import "errors"

var (
	ErrFailedToCreate = errors.New("failed to create record upstream")
	ErrFailedToList   = errors.New("failed to list records upstream")
	ErrFailedToUpdate = errors.New("failed to update record upstream")
	ErrFailedToDelete = errors.New("failed to delete record upstream")
)
