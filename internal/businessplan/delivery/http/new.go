package http

import (
	"planboard/internal/businessplan"
	"planboard/pkg/log"
)

type handler struct {
	l  log.Logger
	uc businessplan.UseCase
}

// New creates the HTTP handler for the business plan domain.
func New(l log.Logger, uc businessplan.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
