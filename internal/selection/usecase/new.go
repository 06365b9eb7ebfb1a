package usecase

import (
	"planboard/internal/category"
	"planboard/internal/selection/store"
	pkgLog "planboard/pkg/log"
)

// implUseCase is the private implementation of selection.UseCase.
type implUseCase struct {
	store      *store.Store
	categoryUC category.UseCase
	l          pkgLog.Logger
}

// New creates the selection use case. The category use case is consulted to
// resolve a selected child category's parent.
func New(st *store.Store, categoryUC category.UseCase, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		store:      st,
		categoryUC: categoryUC,
		l:          l,
	}
}
