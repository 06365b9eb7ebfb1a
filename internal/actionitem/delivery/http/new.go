package http

import (
	"planboard/internal/actionitem"
	"planboard/pkg/log"
)

type handler struct {
	l  log.Logger
	uc actionitem.UseCase
}

// New creates the HTTP handler for the action item domain.
func New(l log.Logger, uc actionitem.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
