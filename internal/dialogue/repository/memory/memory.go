package memory

import (
	"context"
	"sync"

	"estimate-srv/internal/dialogue/repository"
	"estimate-srv/internal/model"
)

type implRepository struct {
	mu       sync.RWMutex
	sessions map[string]model.Session
}

// New returns an in-memory repository, used for single-instance deployments
// and tests.
func New() repository.Repository {
	return &implRepository{
		sessions: make(map[string]model.Session),
	}
}

func (r *implRepository) Get(_ context.Context, userID string) (model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[userID]
	if !ok {
		return model.Session{}, repository.ErrNotFound
	}
	return session, nil
}

func (r *implRepository) Save(_ context.Context, session model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.UserID] = session
	return nil
}

func (r *implRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, userID)
	return nil
}
