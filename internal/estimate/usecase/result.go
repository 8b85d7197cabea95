package usecase

import (
	"context"
	"errors"
	"time"

	"estimate-srv/internal/estimate"
	"estimate-srv/internal/estimate/repository"
	"estimate-srv/internal/model"
)

func (uc *implUseCase) GetResult(ctx context.Context, input estimate.GetResultInput) (estimate.ResultOutput, error) {
	if input.UserID == "" {
		return estimate.ResultOutput{}, estimate.ErrUserRequired
	}

	uc.locks.Lock(input.UserID)
	defer uc.locks.Unlock(input.UserID)

	result, err := uc.repo.Get(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return estimate.ResultOutput{}, estimate.ErrResultNotFound
		}
		uc.l.Errorf(ctx, "estimate.usecase.GetResult: %v", err)
		return estimate.ResultOutput{}, err
	}

	return estimate.ResultOutput{
		Status:  result.Status,
		Summary: result.Request.Summary(),
		Text:    result.FullText,
	}, nil
}

func (uc *implUseCase) GetShrunk(ctx context.Context, input estimate.GetShrunkInput) (estimate.ShrunkOutput, error) {
	if input.UserID == "" {
		return estimate.ShrunkOutput{}, estimate.ErrUserRequired
	}

	uc.locks.Lock(input.UserID)
	defer uc.locks.Unlock(input.UserID)

	result, err := uc.repo.Get(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return estimate.ShrunkOutput{}, estimate.ErrResultNotFound
		}
		uc.l.Errorf(ctx, "estimate.usecase.GetShrunk: %v", err)
		return estimate.ShrunkOutput{}, err
	}

	if result.Status != model.EstimationReady {
		return estimate.ShrunkOutput{}, estimate.ErrResultNotReady
	}

	if result.ShrunkText != "" {
		return estimate.ShrunkOutput{
			Summary: result.Request.Summary(),
			Text:    result.ShrunkText,
		}, nil
	}

	prompt, instruction := buildShrunkPrompt(result.Request)
	text, err := uc.gemini.Generate(ctx, prompt, instruction)
	if err != nil {
		uc.l.Errorf(ctx, "estimate.usecase.GetShrunk: generate: %v", err)
		// Not cached. The next request retries generation instead of
		// serving the fallback forever.
		return estimate.ShrunkOutput{
			Summary: result.Request.Summary(),
			Text:    fallbackText(result.Request, err),
		}, nil
	}

	result.ShrunkText = text
	result.UpdatedAt = time.Now()
	if err := uc.repo.Save(ctx, result); err != nil {
		// The variant was produced, so the caller still gets it. Only the
		// cache write is lost.
		uc.l.Errorf(ctx, "estimate.usecase.GetShrunk: save: %v", err)
	}

	return estimate.ShrunkOutput{
		Summary: result.Request.Summary(),
		Text:    text,
	}, nil
}

func (uc *implUseCase) Reset(ctx context.Context, userID string) error {
	if userID == "" {
		return estimate.ErrUserRequired
	}

	uc.locks.Lock(userID)
	defer uc.locks.Unlock(userID)

	if err := uc.repo.Delete(ctx, userID); err != nil {
		uc.l.Errorf(ctx, "estimate.usecase.Reset: %v", err)
		return err
	}
	return nil
}
