package usecase

import (
	"planboard/internal/actionitem/repository"
	pkgLog "planboard/pkg/log"
)

// implUseCase is the private implementation of actionitem.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    pkgLog.Logger
}

// New creates the action item use case.
func New(repo repository.Repository, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
