package repository

import (
	"github.com/campusops/emptyrooms/internal/config"
)

// Constructors registered by the backend packages from their init, so
// this package does not import its own implementations. main imports
// the backends for the side effect.
var (
	newRedisRepository  func(cfg config.RedisConfig) (Repository, error)
	newMemoryRepository func() Repository
)

// RegisterRedis records the constructor for the Redis-backed repository
func RegisterRedis(constructor func(cfg config.RedisConfig) (Repository, error)) {
	newRedisRepository = constructor
}

// RegisterMemory records the constructor for the in-memory repository
func RegisterMemory(constructor func() Repository) {
	newMemoryRepository = constructor
}
