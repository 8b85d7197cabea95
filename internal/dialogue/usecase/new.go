package usecase

import (
	"estimate-srv/internal/dialogue"
	"estimate-srv/internal/dialogue/repository"
	"estimate-srv/internal/estimate"
	"estimate-srv/internal/slot"
	"estimate-srv/pkg/log"
	"estimate-srv/pkg/util"
)

// DefaultRetryCeiling is how many consecutive unusable answers destroy the
// session.
const DefaultRetryCeiling = 3

type implUseCase struct {
	l            log.Logger
	repo         repository.Repository
	estimateUC   estimate.UseCase
	classifier   slot.Classifier
	retryCeiling int
	// locks serializes turns per user. It must not be shared with the
	// estimate usecase, whose lock set is taken inside Dispatch while a turn
	// lock is held.
	locks *util.KeyedLock
}

func New(l log.Logger, repo repository.Repository, estimateUC estimate.UseCase, classifier slot.Classifier, retryCeiling int) dialogue.UseCase {
	if retryCeiling <= 0 {
		retryCeiling = DefaultRetryCeiling
	}
	return &implUseCase{
		l:            l,
		repo:         repo,
		estimateUC:   estimateUC,
		classifier:   classifier,
		retryCeiling: retryCeiling,
		locks:        util.NewKeyedLock(),
	}
}
