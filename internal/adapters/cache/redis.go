package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig collects the connection settings read from the environment.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (c RedisConfig) addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// NewRedisClient connects the shared redis instance backing the pending
// markers, the calendar cache and the rate limiter. Operations are small
// string reads and writes, so timeouts stay tight: anything slower than a
// few seconds is worse than serving uncached.
func NewRedisClient(host, port, password string, dbIndex int) (*redis.Client, error) {
	cfg := RedisConfig{Host: host, Port: port, Password: password, DB: dbIndex}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("cache: redis unreachable at %s: %w", cfg.addr(), err)
	}

	return rdb, nil
}
