package repository

import (
	"context"

	"estimate-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, userID string) (model.EstimationResult, error)
	// Save stores the result unconditionally. Token comparison against the
	// stored entry is the usecase's responsibility; repositories only
	// persist.
	Save(ctx context.Context, result model.EstimationResult) error
	Delete(ctx context.Context, userID string) error
}
