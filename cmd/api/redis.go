package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// newRedis connects with REDIS_URL, or with the split REDIS_ADDR/USER/PASSWORD
// fields (TLS on), and fails fast if the server is unreachable.
func (a *app) newRedis(ctx context.Context) (*redis.Client, error) {
	var rdb *redis.Client
	if url := a.cfg.RedisURL; url != "" {
		opt, err := redis.ParseURL(url) // rediss:// turns TLS on
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		opt.DialTimeout = 5 * time.Second
		opt.ReadTimeout = 1 * time.Second
		opt.WriteTimeout = 1 * time.Second
		rdb = redis.NewClient(opt)
	} else {
		rdb = redis.NewClient(&redis.Options{
			Addr:         a.cfg.RedisAddr,
			Username:     a.cfg.RedisUser,
			Password:     a.cfg.RedisPassword,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
			TLSConfig:    &tls.Config{MinVersion: tls.VersionTLS12},
		})
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return rdb, nil
}
