package planner

import (
	"planboard/internal/actionitem/repository"
	pkgLog "planboard/pkg/log"
	"planboard/pkg/planapi"
)

type implRepository struct {
	client *planapi.Client
	l      pkgLog.Logger
}

// New creates the plan-API-backed action item repository.
func New(client *planapi.Client, l pkgLog.Logger) repository.Repository {
	if client == nil {
		panic("actionitem/repository/planner: client is required")
	}
	return &implRepository{client: client, l: l}
}
