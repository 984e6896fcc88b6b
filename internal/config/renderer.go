package config

import (
	"os"
	"sync"
)

type RendererConfig struct {
	Enabled    bool
	ChromePath string
}

var (
	rendererConfig *RendererConfig
	rendererOnce   sync.Once
)

func LoadRendererConfig() *RendererConfig {
	rendererOnce.Do(func() {
		rendererConfig = &RendererConfig{
			Enabled:    getEnvBool("RENDER_PDF"),
			ChromePath: os.Getenv("CHROME_PATH"),
		}
	})
	return rendererConfig
}
