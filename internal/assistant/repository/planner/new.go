package planner

import (
	"planboard/internal/assistant/repository"
	pkgLog "planboard/pkg/log"
	"planboard/pkg/planapi"
)

type implRepository struct {
	client *planapi.Client
	l      pkgLog.Logger
}

// New creates the plan-API-backed conversation repository.
func New(client *planapi.Client, l pkgLog.Logger) repository.Repository {
	if client == nil {
		panic("assistant/repository/planner: client is required")
	}
	return &implRepository{client: client, l: l}
}
