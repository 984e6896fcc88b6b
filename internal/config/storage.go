package config

import (
	"os"
	"sync"
)

// StorageConfig points at an S3 compatible bucket (AWS S3, Cloudflare R2, MinIO)
// used to archive uploaded resumes. Without a bucket files stay on local disk.
type StorageConfig struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

var (
	storageConfig *StorageConfig
	storageOnce   sync.Once
)

func LoadStorageConfig() *StorageConfig {
	storageOnce.Do(func() {
		storageConfig = &StorageConfig{
			Bucket:    os.Getenv("S3_BUCKET"),
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			Region:    getEnv("S3_REGION", "auto"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
		}
	})
	return storageConfig
}

func (c *StorageConfig) Enabled() bool {
	return c.Bucket != "" && c.AccessKey != "" && c.SecretKey != ""
}
