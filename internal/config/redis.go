package config

import (
	"os"
	"sync"
)

type RedisConfig struct {
	URL string
}

var (
	redisConfig *RedisConfig
	redisOnce   sync.Once
)

func LoadRedisConfig() *RedisConfig {
	redisOnce.Do(func() {
		redisConfig = &RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		}
	})
	return redisConfig
}

func (c *RedisConfig) Enabled() bool {
	return c.URL != ""
}
