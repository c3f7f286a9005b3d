package storage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// LocalStorageService implements photo storage on the local filesystem.
// Download URLs point back at the server's own photo endpoints.
type LocalStorageService struct {
	baseURL   string // Server URL (e.g., "http://localhost:8080")
	photosDir string // Local directory for uploaded photos
}

// NewLocalStorageService creates a new local storage service
func NewLocalStorageService(baseURL, uploadsDir string) (*LocalStorageService, error) {
	photosDir := filepath.Join(uploadsDir, "photos")

	if err := os.MkdirAll(photosDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create photos directory: %w", err)
	}

	return &LocalStorageService{
		baseURL:   baseURL,
		photosDir: photosDir,
	}, nil
}

// SaveFile saves an uploaded photo to the local filesystem
func (s *LocalStorageService) SaveFile(key string, reader io.Reader) error {
	fullPath := filepath.Join(s.photosDir, key)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// ReadFile reads a photo from the local filesystem
func (s *LocalStorageService) ReadFile(key string) (io.ReadCloser, error) {
	fullPath := filepath.Join(s.photosDir, key)

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// GetDownloadURL generates a download URL served by the photo endpoints
func (s *LocalStorageService) GetDownloadURL(ctx context.Context, key string) (string, error) {
	return fmt.Sprintf("%s/api/v1/photos/download?key=%s", s.baseURL, url.QueryEscape(key)), nil
}

// FileExists checks if a photo exists in the local filesystem
func (s *LocalStorageService) FileExists(ctx context.Context, key string) (bool, int64, error) {
	fullPath := filepath.Join(s.photosDir, key)

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}

	return true, info.Size(), nil
}

// DeleteFile deletes a photo from the local filesystem
func (s *LocalStorageService) DeleteFile(ctx context.Context, key string) error {
	fullPath := filepath.Join(s.photosDir, key)

	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// ListKeysOlderThan walks the photos directory and returns keys last
// modified before the cutoff
func (s *LocalStorageService) ListKeysOlderThan(ctx context.Context, cutoff time.Time) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(s.photosDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.ModTime().Before(cutoff) {
			rel, err := filepath.Rel(s.photosDir, path)
			if err != nil {
				return err
			}
			keys = append(keys, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk photos directory: %w", err)
	}
	return keys, nil
}
