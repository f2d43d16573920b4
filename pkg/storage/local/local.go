// Package local implements the local filesystem storage adapter.
package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/commercegrid/mediabridge/pkg/storage"
)

// Storage implements the storage.Storage interface using the local media
// directory.
type Storage struct {
	basePath     string
	publicPrefix string
}

// New creates a new local storage adapter.
// basePath is the root directory for storing files (e.g. "data/media");
// publicPrefix is the URL path the HTTP layer serves it under (e.g. "/media").
func New(basePath, publicPrefix string) (*Storage, error) {
	if basePath == "" {
		basePath = "data/media"
	}
	if publicPrefix == "" {
		publicPrefix = "/media"
	}

	// Ensure base directory exists
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create media directory: %w", err)
	}

	return &Storage{
		basePath:     basePath,
		publicPrefix: strings.TrimSuffix(publicPrefix, "/"),
	}, nil
}

// PutObject writes a file to the local filesystem, creating parent
// directories on demand. An existing file at the same key is overwritten.
func (s *Storage) PutObject(ctx context.Context, key string, data io.Reader, contentType string, size int64) error {
	fullPath := s.keyToPath(key)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		os.Remove(fullPath)
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// GetObject reads a file from the local filesystem.
func (s *Storage) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	fullPath := s.keyToPath(key)

	f, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("object not found: %s", key)
		}
		return nil, fmt.Errorf("open file: %w", err)
	}

	return f, nil
}

// DeleteObject removes a file from the local filesystem. A missing file is
// treated as already deleted.
func (s *Storage) DeleteObject(ctx context.Context, key string) error {
	fullPath := s.keyToPath(key)

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil // Already deleted
		}
		return fmt.Errorf("delete file: %w", err)
	}

	// Try to remove parent directory if empty
	dir := filepath.Dir(fullPath)
	os.Remove(dir) // Ignore error if directory is not empty

	return nil
}

// ObjectExists checks if a file exists in the local filesystem.
func (s *Storage) ObjectExists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(s.keyToPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat file: %w", err)
	}

	return true, nil
}

// ListObjects reads directory entries under prefix. The whole directory
// fits in one page; cursor and limit are accepted for interface parity.
func (s *Storage) ListObjects(ctx context.Context, prefix string, cursor string, limit int32) (*storage.ListPage, error) {
	dir := s.keyToPath(strings.TrimSuffix(prefix, "/"))

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &storage.ListPage{}, nil
		}
		return nil, fmt.Errorf("read directory: %w", err)
	}

	objects := make([]storage.ObjectInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		key := entry.Name()
		if p := strings.TrimSuffix(prefix, "/"); p != "" {
			key = path.Join(p, entry.Name())
		}
		objects = append(objects, storage.ObjectInfo{
			Key:          key,
			Size:         info.Size(),
			LastModified: info.ModTime(),
		})
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })

	return &storage.ListPage{Objects: objects}, nil
}

// GenerateURL returns the served media path for the file.
func (s *Storage) GenerateURL(ctx context.Context, key string) (string, error) {
	return s.publicPrefix + "/" + strings.TrimPrefix(key, "/"), nil
}

// Type returns "local" as the storage type identifier.
func (s *Storage) Type() string {
	return storage.TypeLocal
}

// keyToPath converts an object key to a full filesystem path.
func (s *Storage) keyToPath(key string) string {
	return filepath.Join(s.basePath, filepath.FromSlash(key))
}

// BasePath returns the base path of the storage.
func (s *Storage) BasePath() string {
	return s.basePath
}

// PublicPrefix returns the URL prefix local files are served under.
func (s *Storage) PublicPrefix() string {
	return s.publicPrefix
}
