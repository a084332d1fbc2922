package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/yigit/idscan/internal/pkg/filestorage"
	"github.com/yigit/idscan/internal/pkg/logger"
)

// FileKV stores all keys in a single JSON object on disk. Every Set rewrites
// the whole file through a temporary file and a rename.
type FileKV struct {
	path string
	mu   sync.Mutex
}

// NewFileKV creates a FileKV at path, creating the parent directory.
func NewFileKV(path string) (*FileKV, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error().Err(err).Str("path", dir).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}
	logger.Info().Str("path", path).Msg("File storage ready")

	return &FileKV{path: path}, nil
}

// Path returns the backing file location
func (f *FileKV) Path() string {
	return f.path
}

func (f *FileKV) readAll() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}
	if len(data) == 0 {
		return map[string]string{}, nil
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to decode storage file: %w", err)
	}
	return values, nil
}

// Get returns the value stored under key
func (f *FileKV) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.readAll()
	if err != nil {
		return "", err
	}
	v, ok := values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

// Set stores value under key
func (f *FileKV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.readAll()
	if err != nil {
		// An unreadable file is overwritten.
		logger.Warn().Err(err).Str("path", f.path).Msg("Discarding unreadable storage file")
		values = map[string]string{}
	}
	values[key] = value

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode storage file: %w", err)
	}

	return filestorage.WriteFileAtomic(f.path, data, 0o644)
}

// Close is a no-op
func (f *FileKV) Close() error {
	return nil
}
