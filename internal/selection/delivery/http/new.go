package http

import (
	"planboard/internal/selection"
	"planboard/pkg/log"
)

type handler struct {
	l  log.Logger
	uc selection.UseCase
}

// New creates the HTTP handler for the selection domain.
func New(l log.Logger, uc selection.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
