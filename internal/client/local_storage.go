package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage implements StorageClient on the local filesystem. Used as a
// fallback when R2 is not configured, mainly in development.
type LocalStorage struct {
	baseDir   string
	publicURL string
}

// NewLocalStorage creates a filesystem-backed storage client rooted at baseDir
func NewLocalStorage(baseDir, publicURL string) *LocalStorage {
	return &LocalStorage{
		baseDir:   baseDir,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

func (s *LocalStorage) path(key string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(key))
}

// Upload writes the object under baseDir and returns its public URL
func (s *LocalStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	fullPath := s.path(key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage dir: %w", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.GetPublicURL(key), nil
}

// Download reads the object back. Content type is inferred from the extension.
func (s *LocalStorage) Download(ctx context.Context, key string) ([]byte, string, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}

	contentType := "application/octet-stream"
	if strings.HasSuffix(key, ".mp3") {
		contentType = "audio/mpeg"
	} else if strings.HasSuffix(key, ".wav") {
		contentType = "audio/wav"
	}
	return data, contentType, nil
}

// Delete removes the object from disk
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetSignedURL returns the public URL; local files are not signed
func (s *LocalStorage) GetSignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return s.GetPublicURL(key), nil
}

// GetPublicURL returns the URL the server serves this file under
func (s *LocalStorage) GetPublicURL(key string) string {
	if s.publicURL != "" {
		return s.publicURL + "/" + key
	}
	return "/files/" + key
}

// IsConfigured always returns true; local storage needs no credentials
func (s *LocalStorage) IsConfigured() bool {
	return true
}
