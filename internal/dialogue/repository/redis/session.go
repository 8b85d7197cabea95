package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"estimate-srv/internal/dialogue/repository"
	"estimate-srv/internal/model"
)

const (
	Prefix = "session:"

	// DefaultSessionTTL lets abandoned dialogues expire on their own.
	DefaultSessionTTL = 30 * time.Minute
)

func (r *implRepository) Get(ctx context.Context, userID string) (model.Session, error) {
	key := fmt.Sprintf("%s%s", Prefix, userID)
	data, err := r.redis.Get(ctx, key)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return model.Session{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "dialogue.repository.redis.Get: %v", err)
		return model.Session{}, err
	}

	var session model.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		r.l.Errorf(ctx, "dialogue.repository.redis.Get: unmarshal error: %v", err)
		return model.Session{}, err
	}
	return session, nil
}

func (r *implRepository) Save(ctx context.Context, session model.Session) error {
	key := fmt.Sprintf("%s%s", Prefix, session.UserID)
	data, err := json.Marshal(session)
	if err != nil {
		r.l.Errorf(ctx, "dialogue.repository.redis.Save: marshal error: %v", err)
		return err
	}

	// Every save refreshes the TTL, so the window is measured from the last
	// turn rather than from session creation.
	if err := r.redis.Set(ctx, key, data, r.ttl); err != nil {
		r.l.Errorf(ctx, "dialogue.repository.redis.Save: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, userID string) error {
	key := fmt.Sprintf("%s%s", Prefix, userID)
	if err := r.redis.Delete(ctx, key); err != nil {
		r.l.Errorf(ctx, "dialogue.repository.redis.Delete: %v", err)
		return err
	}
	return nil
}
