package redis

import (
	"context"
	"hotel/config"
	"net"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	dialTimeout = 5 * time.Second
	ioTimeout   = 3 * time.Second
	pingTimeout = 5 * time.Second
)

// Options maps the primary Redis settings onto client options.
func Options(config *config.Config) *goRedis.Options {
	primary := config.Cache.Redis.Primary

	return &goRedis.Options{
		Addr:         net.JoinHostPort(primary.Host, primary.Port),
		Password:     primary.Password,
		DB:           primary.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	}
}

// New connects to the primary Redis. It returns nil when the cache is disabled or
// unreachable, which shared/cache treats as an always-miss cache.
func New(config *config.Config) *goRedis.Client {
	if !config.Cache.Enable {
		log.Warn().Msg("Cache disabled, skipping Redis connection")

		return nil
	}

	options := Options(config)
	client := goRedis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Str("addr", options.Addr).Msg("Redis unreachable, serving without cache")

		_ = client.Close()

		return nil
	}

	log.Info().
		Str("addr", options.Addr).
		Int("db", options.DB).
		Msg("Connected to Redis")

	return client
}
