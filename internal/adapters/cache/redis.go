package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

type Options struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (o Options) Addr() string {
	return net.JoinHostPort(o.Host, o.Port)
}

// NewRedisClient dials redis and fails fast when the server does not answer a PING.
func NewRedisClient(ctx context.Context, opts Options) (*redis.Client, error) {
	addr := opts.Addr()

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return rdb, nil
}
