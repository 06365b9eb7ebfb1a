package usecase

import (
	itemRepo "planboard/internal/actionitem/repository"
	pkgLog "planboard/pkg/log"
)

// implUseCase is the private implementation of category.UseCase.
type implUseCase struct {
	repo itemRepo.Repository
	l    pkgLog.Logger
}

// New creates the category derivation use case. The repository should be the
// cached decorator so that per-list detail fetches inside a derivation pass
// do not fan out into duplicate upstream calls.
func New(repo itemRepo.Repository, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
