package repository

import "errors"

var (
	ErrFailedToGet  = errors.New("failed to get plan upstream")
	ErrFailedToPut  = errors.New("failed to save plan upstream")
	ErrFailedToSave = errors.New("failed to save section upstream")
)
