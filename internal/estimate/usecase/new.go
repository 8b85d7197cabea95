package usecase

import (
	"estimate-srv/internal/estimate"
	"estimate-srv/internal/estimate/repository"
	"estimate-srv/pkg/gemini"
	"estimate-srv/pkg/log"
	"estimate-srv/pkg/util"
)

type implUseCase struct {
	l      log.Logger
	repo   repository.Repository
	gemini gemini.IGemini
	// locks serializes result reads and writes per user. It is owned by this
	// usecase; sharing a lock set with the dialogue layer would deadlock when
	// Dispatch runs inside a held turn lock.
	locks *util.KeyedLock
}

func New(l log.Logger, repo repository.Repository, gemini gemini.IGemini) estimate.UseCase {
	return &implUseCase{
		l:      l,
		repo:   repo,
		gemini: gemini,
		locks:  util.NewKeyedLock(),
	}
}
