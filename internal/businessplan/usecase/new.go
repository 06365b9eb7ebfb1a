package usecase

import (
	"planboard/internal/businessplan/repository"
	pkgLog "planboard/pkg/log"
)

// implUseCase is the private implementation of businessplan.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    pkgLog.Logger
}

// New creates the business plan use case.
func New(repo repository.Repository, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
