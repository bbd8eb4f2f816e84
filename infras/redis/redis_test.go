package redis_test

import (
	"hotel/config"
	"hotel/infras/redis"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = "cache"
	cfg.Cache.Redis.Primary.Port = "6379"
	cfg.Cache.Redis.Primary.Password = "secret"
	cfg.Cache.Redis.Primary.DB = 2

	options := redis.Options(cfg)

	assert.Equal(t, "cache:6379", options.Addr)
	assert.Equal(t, "secret", options.Password)
	assert.Equal(t, 2, options.DB)
	assert.NotZero(t, options.ReadTimeout)
}

func TestNewDisabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enable = false

	assert.Nil(t, redis.New(cfg))
}
