package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// ObjectStore archives processed uploads.
type ObjectStore interface {
	// Put stores the local file under key and returns where it can be found.
	Put(ctx context.Context, key, localPath, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// LocalStore moves files under Dir, which the server exposes at PublicPrefix.
type LocalStore struct {
	Dir          string
	PublicPrefix string
}

func NewLocalStore(dir, publicPrefix string) *LocalStore {
	return &LocalStore{Dir: dir, PublicPrefix: publicPrefix}
}

func (s *LocalStore) Put(_ context.Context, key, localPath, _ string) (string, error) {
	dst := filepath.Join(s.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create archive dir: %w", err)
	}
	if err := os.Rename(localPath, dst); err != nil {
		// Rename fails across devices; fall back to a copy.
		if err := copyFile(localPath, dst); err != nil {
			return "", fmt.Errorf("archive %s: %w", key, err)
		}
	}
	return path.Join(s.PublicPrefix, key), nil
}

func (s *LocalStore) Delete(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(s.Dir, filepath.FromSlash(key)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
