package config

import (
	"log"
	"os"
	"strconv"
	"sync"
)

type AppConfig struct {
	Name         string
	Env          string
	Port         string
	BaseURL      string
	UploadDir    string
	GeneratedDir string
	RateLimitMax int
	// EnvExplicit is false when APP_ENV was missing and defaulted.
	EnvExplicit bool
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		appConfig = newAppConfig()
	})
	return appConfig
}

func newAppConfig() *AppConfig {
	env := os.Getenv("APP_ENV")
	explicit := env != ""
	if !explicit {
		env = "development"
		log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
	}
	port := getEnv("APP_PORT", ":5000")
	if port[0] != ':' {
		port = ":" + port
	}
	return &AppConfig{
		Name:         getEnv("APP_NAME", "Starplan"),
		Env:          env,
		Port:         port,
		BaseURL:      os.Getenv("APP_URL"),
		UploadDir:    getEnv("UPLOAD_DIR", "./uploads"),
		GeneratedDir: getEnv("GENERATED_DIR", "./generated"),
		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 50),
		EnvExplicit:  explicit,
	}
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// ExposeErrors reports whether error responses may carry the underlying
// error and stack. Only an explicit APP_ENV=development turns it on.
func (c *AppConfig) ExposeErrors() bool {
	return c.EnvExplicit && c.Env == "development"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("Warning: %s=%q is not a valid number, using %d", key, v, def)
		return def
	}
	return n
}

func getEnvBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}
