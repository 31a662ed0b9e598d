package blob

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const localScheme = "file://"

// ErrInvalidKey is returned for keys that would escape the storage root.
var ErrInvalidKey = errors.New("invalid object key")

// Local keeps objects as files under a base directory.
type Local struct {
	baseDir string
}

func NewLocal(baseDir string) (*Local, error) {
	if baseDir == "" {
		baseDir = "uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("prepare upload dir: %w", err)
	}
	return &Local{baseDir: baseDir}, nil
}

func (l *Local) Put(_ context.Context, key, _ string, data []byte) (string, error) {
	path, err := l.path(key)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", key, err)
	}
	return localScheme + key, nil
}

func (l *Local) Get(_ context.Context, uri string) ([]byte, error) {
	path, err := l.path(strings.TrimPrefix(uri, localScheme))
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (l *Local) Delete(_ context.Context, uri string) error {
	path, err := l.path(strings.TrimPrefix(uri, localScheme))
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (l *Local) path(key string) (string, error) {
	if key == "" || strings.Contains(key, "..") || strings.ContainsAny(key, `/\`) {
		return "", ErrInvalidKey
	}
	return filepath.Join(l.baseDir, key), nil
}
