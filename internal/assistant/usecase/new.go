package usecase

import (
	"planboard/internal/assistant"
	"planboard/internal/assistant/repository"
	"planboard/internal/assistant/store"
	"planboard/internal/businessplan"
	pkgLog "planboard/pkg/log"
)

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	repo      repository.Repository
	sessions  *store.Store
	planUC    businessplan.UseCase
	suggester assistant.Suggester
	l         pkgLog.Logger
}

// New creates the assistant use case.
func New(
	repo repository.Repository,
	sessions *store.Store,
	planUC businessplan.UseCase,
	suggester assistant.Suggester,
	l pkgLog.Logger,
) *implUseCase {
	return &implUseCase{
		repo:      repo,
		sessions:  sessions,
		planUC:    planUC,
		suggester: suggester,
		l:         l,
	}
}
