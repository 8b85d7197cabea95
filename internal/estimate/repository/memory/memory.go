package memory

import (
	"context"
	"sync"

	"estimate-srv/internal/estimate/repository"
	"estimate-srv/internal/model"
)

type implRepository struct {
	mu      sync.RWMutex
	results map[string]model.EstimationResult
}

// New returns an in-memory repository, used for single-instance deployments
// and tests.
func New() repository.Repository {
	return &implRepository{
		results: make(map[string]model.EstimationResult),
	}
}

func (r *implRepository) Get(_ context.Context, userID string) (model.EstimationResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, ok := r.results[userID]
	if !ok {
		return model.EstimationResult{}, repository.ErrNotFound
	}
	return result, nil
}

func (r *implRepository) Save(_ context.Context, result model.EstimationResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.results[result.UserID] = result
	return nil
}

func (r *implRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.results, userID)
	return nil
}
