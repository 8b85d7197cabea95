package redis

import (
	"time"

	"estimate-srv/internal/estimate/repository"
	"estimate-srv/pkg/log"
	pkgRedis "estimate-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	ttl   time.Duration
	l     log.Logger
}

func New(redis pkgRedis.IRedis, ttl time.Duration, l log.Logger) repository.Repository {
	if ttl == 0 {
		ttl = DefaultResultTTL
	}
	return &implRepository{
		redis: redis,
		ttl:   ttl,
		l:     l,
	}
}
