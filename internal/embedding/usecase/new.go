package usecase

import (
	"estimate-srv/internal/embedding"
	"estimate-srv/internal/embedding/repository"
	"estimate-srv/pkg/log"
	"estimate-srv/pkg/voyage"
)

type implUseCase struct {
	repo   repository.Repository
	voyage voyage.IVoyage
	l      log.Logger
}

func New(repo repository.Repository, voyage voyage.IVoyage, l log.Logger) embedding.UseCase {
	return &implUseCase{
		repo:   repo,
		voyage: voyage,
		l:      l,
	}
}
