package handler

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
)

const maxUploadSize = 10 * 1024 * 1024

// uploadName returns "<prefix>-<unix ms>-<random><ext>".
func uploadName(prefix, ext string) string {
	return fmt.Sprintf("%s-%d-%d%s", prefix, time.Now().UnixMilli(), rand.IntN(1_000_000_000), ext)
}

// saveUpload stores the multipart file under dir and returns its path.
func saveUpload(c *fiber.Ctx, field, dir, name string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := c.SaveFile(file, path); err != nil {
		return "", fmt.Errorf("save %s: %w", field, err)
	}
	return path, nil
}

func withLimiter(limiter fiber.Handler, h fiber.Handler) []fiber.Handler {
	if limiter == nil {
		return []fiber.Handler{h}
	}
	return []fiber.Handler{limiter, h}
}
