package estimate

import (
	"context"

	"estimate-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Dispatch records a pending entry for the request's user and launches
	// estimate generation in the background. It never blocks on the
	// generation collaborator. A second dispatch for the same user
	// overwrites the pending entry (last-write-wins).
	Dispatch(ctx context.Context, req model.EstimationRequest)

	// GetResult returns the cached estimate for the user, pending or ready.
	GetResult(ctx context.Context, input GetResultInput) (ResultOutput, error)

	// GetShrunk returns the budget-constrained variant for a completed
	// estimate, computing and caching it on first request.
	GetShrunk(ctx context.Context, input GetShrunkInput) (ShrunkOutput, error)

	// Reset drops the cached results for the user.
	Reset(ctx context.Context, userID string) error
}
