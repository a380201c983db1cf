package mock

import (
	"fmt"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	redisOnce sync.Once
	redisMock *Redis
	redisErr  error
)

// Redis pairs a miniredis server with a client connected to it.
type Redis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

// NewRedis starts the server on first use and returns the same instance afterwards.
func NewRedis() (*Redis, error) {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			redisErr = fmt.Errorf("failed to start miniredis: %w", err)
			return
		}
		redisMock = &Redis{
			Server: server,
			Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
		}
	})
	return redisMock, redisErr
}

// Clear drops every key, including report cache versions.
func (r *Redis) Clear() {
	r.Server.FlushAll()
}

// Close stops the client and the server.
func (r *Redis) Close() {
	_ = r.Client.Close()
	r.Server.Close()
}
