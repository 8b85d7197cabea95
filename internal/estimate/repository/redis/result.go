package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"estimate-srv/internal/estimate/repository"
	"estimate-srv/internal/model"
)

const (
	Prefix = "result:"

	DefaultResultTTL = 24 * time.Hour
)

func (r *implRepository) Get(ctx context.Context, userID string) (model.EstimationResult, error) {
	key := fmt.Sprintf("%s%s", Prefix, userID)
	data, err := r.redis.Get(ctx, key)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return model.EstimationResult{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "estimate.repository.redis.Get: %v", err)
		return model.EstimationResult{}, err
	}

	var result model.EstimationResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		r.l.Errorf(ctx, "estimate.repository.redis.Get: unmarshal error: %v", err)
		return model.EstimationResult{}, err
	}
	return result, nil
}

func (r *implRepository) Save(ctx context.Context, result model.EstimationResult) error {
	key := fmt.Sprintf("%s%s", Prefix, result.UserID)
	data, err := json.Marshal(result)
	if err != nil {
		r.l.Errorf(ctx, "estimate.repository.redis.Save: marshal error: %v", err)
		return err
	}

	if err := r.redis.Set(ctx, key, data, r.ttl); err != nil {
		r.l.Errorf(ctx, "estimate.repository.redis.Save: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, userID string) error {
	key := fmt.Sprintf("%s%s", Prefix, userID)
	if err := r.redis.Delete(ctx, key); err != nil {
		r.l.Errorf(ctx, "estimate.repository.redis.Delete: %v", err)
		return err
	}
	return nil
}
