package repository

import (
	"context"

	"estimate-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, userID string) (model.Session, error)
	Save(ctx context.Context, session model.Session) error
	Delete(ctx context.Context, userID string) error
}
