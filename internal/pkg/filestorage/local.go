package filestorage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yigit/idscan/internal/pkg/logger"
)

// LocalStorage saves files under a base directory on the local filesystem.
type LocalStorage struct {
	basePath string
}

var _ FileStorage = (*LocalStorage)(nil)

// NewLocalStorage creates a LocalStorage rooted at basePath, creating it if
// needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Debug().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// SaveFile atomically writes data to basePath/name. Only the base name of
// name is used, so callers cannot escape the directory.
func (ls *LocalStorage) SaveFile(name string, data []byte) (string, error) {
	path := ls.GetFullPath(name)
	if path == "" {
		return "", fmt.Errorf("invalid file name: %q", name)
	}

	if err := WriteFileAtomic(path, data, 0o644); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to save file")
		return "", err
	}

	logger.Info().Str("path", path).Int("bytes", len(data)).Msg("File saved successfully")
	return path, nil
}

// DeleteFile removes basePath/name. Deleting a missing file succeeds.
func (ls *LocalStorage) DeleteFile(name string) error {
	path := ls.GetFullPath(name)
	if path == "" {
		return fmt.Errorf("invalid file name: %q", name)
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Error().Err(err).Str("path", path).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetFullPath returns the filesystem path for name, or "" when name has no
// usable base name.
func (ls *LocalStorage) GetFullPath(name string) string {
	filename := filepath.Base(name)
	if filename == "" || filename == "." || filename == "/" || filename == ".." {
		return ""
	}
	return filepath.Join(ls.basePath, filename)
}

// WriteFileAtomic writes data to a temporary file in the target directory and
// renames it over path, so readers never see a partial file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}
