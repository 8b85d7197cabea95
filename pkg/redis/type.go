package redis

import (
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultConnectTimeout bounds the startup ping.
const DefaultConnectTimeout = 5 * time.Second

var (
	// ErrHostRequired - Redis host missing from config.
	ErrHostRequired = errors.New("redis: host is required")

	// ErrInvalidPort - Redis port outside 1-65535.
	ErrInvalidPort = errors.New("redis: invalid port")
)

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// redisImpl implements IRedis using go-redis.
type redisImpl struct {
	client *goredis.Client
}
