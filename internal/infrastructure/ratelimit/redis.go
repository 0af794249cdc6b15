package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Finanzas-api/pkg/config"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

const keyPrefix = "finanzas:ratelimit:"

type redisLimiter struct {
	client  *redis.Client
	log     *logger.Logger
	timeout time.Duration
}

// NewRedis conecta con Redis y comprueba la conexión con PING.
// Si Redis falla en Allow, la petición se deja pasar y se registra el error.
func NewRedis(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (Limiter, error) {
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &redisLimiter{client: client, log: log, timeout: 250 * time.Millisecond}, nil
}

func (l *redisLimiter) Allow(key string, limit int, win time.Duration) Decision {
	if limit <= 0 {
		return Decision{Allowed: true}
	}
	if win <= 0 {
		win = time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	redisKey := keyPrefix + key
	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		l.log.Error().Err(err).Str("op", "incr").Msg("rate limiter redis")
		return Decision{Allowed: true}
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, win).Err(); err != nil {
			l.log.Error().Err(err).Str("op", "expire").Msg("rate limiter redis")
		}
	}
	ttl, err := l.client.TTL(ctx, redisKey).Result()
	if err != nil || ttl <= 0 {
		ttl = win
	}
	return Decision{
		Allowed:   int(count) <= limit,
		Count:     int(count),
		WindowEnd: time.Now().Add(ttl),
	}
}

func (l *redisLimiter) Close() {
	_ = l.client.Close()
}
