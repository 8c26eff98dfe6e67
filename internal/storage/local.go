package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage stores uploaded files in a single directory on the local
// filesystem.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage creates a LocalStorage rooted at baseDir, creating the
// directory if it does not exist yet.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: mkdir: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

var _ Storage = (*LocalStorage)(nil)

// Save writes the file under a uuid-based name. Only the extension of the
// client-supplied name is reused, lowercased; the base name never reaches
// the filesystem.
func (s *LocalStorage) Save(_ context.Context, originalName string, data io.Reader) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	name := uuid.NewString() + ext
	dest := filepath.Join(s.baseDir, name)

	f, err := os.Create(dest)
	if err != nil {
		return "", "", fmt.Errorf("storage: create: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		os.Remove(dest)
		return "", "", fmt.Errorf("storage: write: %w", err)
	}
	return name, dest, nil
}

// Resolve validates name and returns the absolute path of the stored file.
// Traversal attempts and missing files both come back as ErrNotFound so the
// caller cannot distinguish (and cannot probe) paths outside the root.
func (s *LocalStorage) Resolve(name string) (string, error) {
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "\\") || strings.Contains(name, "..") {
		return "", ErrNotFound
	}

	absDir, err := filepath.Abs(s.baseDir)
	if err != nil {
		return "", fmt.Errorf("storage: resolve root: %w", err)
	}

	path := filepath.Join(absDir, name)
	if !strings.HasPrefix(path, absDir+string(filepath.Separator)) {
		return "", ErrNotFound
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ErrNotFound
	}
	return path, nil
}
