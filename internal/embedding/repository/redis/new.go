package redis

import (
	"estimate-srv/internal/embedding/repository"
	"estimate-srv/pkg/log"
	pkgRedis "estimate-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.Repository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
