package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"estimate-srv/internal/embedding/repository"
)

const Prefix = "embedding:"

func (r *implRepository) Get(ctx context.Context, opt repository.GetOptions) ([]float32, error) {
	key := fmt.Sprintf("%s%s", Prefix, opt.Key)
	data, err := r.redis.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var vector []float32
	if err := json.Unmarshal([]byte(data), &vector); err != nil {
		r.l.Errorf(ctx, "embedding.repository.redis.Get: unmarshal error: %v", err)
		return nil, err
	}
	return vector, nil
}

func (r *implRepository) Save(ctx context.Context, opt repository.SaveOptions) error {
	key := fmt.Sprintf("%s%s", Prefix, opt.Key)
	data, err := json.Marshal(opt.Vector)
	if err != nil {
		r.l.Errorf(ctx, "embedding.repository.redis.Save: %v", err)
		return err
	}

	ttl := opt.TTL
	if ttl == 0 {
		ttl = 7 * 24 * time.Hour
	}

	if err := r.redis.Set(ctx, key, data, ttl); err != nil {
		r.l.Errorf(ctx, "embedding.repository.redis.Save: %v", err)
		return err
	}
	return nil
}
