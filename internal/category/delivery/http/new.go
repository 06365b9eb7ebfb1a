package http

import (
	"planboard/internal/category"
	"planboard/pkg/log"
)

type handler struct {
	l  log.Logger
	uc category.UseCase
}

// New creates the HTTP handler for the category domain.
func New(l log.Logger, uc category.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
