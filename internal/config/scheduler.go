package config

import (
	"sync"
	"time"
)

type SchedulerConfig struct {
	UploadRetention time.Duration
	CleanupSpec     string
}

var (
	schedulerConfig *SchedulerConfig
	schedulerOnce   sync.Once
)

func LoadSchedulerConfig() *SchedulerConfig {
	schedulerOnce.Do(func() {
		schedulerConfig = &SchedulerConfig{
			UploadRetention: time.Duration(getEnvInt("UPLOAD_RETENTION_HOURS", 24)) * time.Hour,
			CleanupSpec:     getEnv("CLEANUP_SCHEDULE", "@every 1h"),
		}
	})
	return schedulerConfig
}
