package usecase

import (
	"context"
	"errors"
	"time"

	"estimate-srv/internal/estimate/repository"
	"estimate-srv/internal/model"
)

func (uc *implUseCase) Dispatch(ctx context.Context, req model.EstimationRequest) {
	uc.locks.Lock(req.UserID)
	pending := model.EstimationResult{
		UserID:    req.UserID,
		Token:     req.Token,
		Status:    model.EstimationPending,
		Request:   req,
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Save(ctx, pending); err != nil {
		uc.l.Errorf(ctx, "estimate.usecase.Dispatch: save pending: %v", err)
	}
	uc.locks.Unlock(req.UserID)

	// The generation call outlives the webhook request, so it must not
	// inherit the request context.
	go uc.generate(context.Background(), req)
}

func (uc *implUseCase) generate(ctx context.Context, req model.EstimationRequest) {
	text, err := uc.gemini.Generate(ctx, buildFullPrompt(req), fullSystemInstruction)
	if err != nil {
		uc.l.Errorf(ctx, "estimate.usecase.generate: %v", err)
		text = fallbackText(req, err)
	}

	uc.locks.Lock(req.UserID)
	defer uc.locks.Unlock(req.UserID)

	// A newer dispatch or a reset may have landed while we were generating.
	// Only the entry carrying our token may be completed.
	current, err := uc.repo.Get(ctx, req.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			uc.l.Errorf(ctx, "estimate.usecase.generate: get current: %v", err)
		}
		return
	}
	if current.Token != req.Token {
		uc.l.Warnf(ctx, "estimate.usecase.generate: stale token %d, current %d, discarding", req.Token, current.Token)
		return
	}

	current.Status = model.EstimationReady
	current.FullText = text
	current.UpdatedAt = time.Now()
	if err := uc.repo.Save(ctx, current); err != nil {
		uc.l.Errorf(ctx, "estimate.usecase.generate: save ready: %v", err)
	}
}
