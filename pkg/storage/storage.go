package storage

// Package storage defines the storage abstraction layer shared by both
// media platforms. It provides a unified interface over the local media
// directory and S3-compatible object storage (AWS S3, Aliyun OSS, MinIO).

import (
	"context"
	"io"
	"time"
)

// Platform identifiers returned by Type().
const (
	TypeLocal = "local"
	TypeS3    = "s3"
)

// ObjectInfo describes a stored object returned by listings.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// ListPage is one page of a ListObjects result.
type ListPage struct {
	Objects    []ObjectInfo
	NextCursor string
	HasMore    bool
}

// Storage defines the interface for object storage operations.
// Both platform backends must implement this interface.
type Storage interface {
	// PutObject uploads a file to storage.
	// key: object key in format "{directory}/{fileName}"
	// data: file content reader
	// contentType: MIME type of the file
	// size: file size in bytes
	PutObject(ctx context.Context, key string, data io.Reader, contentType string, size int64) error

	// GetObject retrieves a file from storage.
	// Returns a ReadCloser that must be closed by the caller.
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)

	// DeleteObject removes a file from storage. Deleting a key that does
	// not exist is not an error.
	DeleteObject(ctx context.Context, key string) error

	// ObjectExists checks if an object exists in storage.
	ObjectExists(ctx context.Context, key string) (bool, error)

	// ListObjects returns one page of objects whose keys start with prefix.
	// cursor is the continuation token from a previous page, empty for the
	// first page. limit bounds the page size (0 means backend default).
	ListObjects(ctx context.Context, prefix string, cursor string, limit int32) (*ListPage, error)

	// GenerateURL creates the public access URL for the object.
	// For local storage: a path under the served media prefix, e.g.
	// /media/products/1001_l_1700000000.jpg
	// For S3: an absolute URL under the configured public base.
	GenerateURL(ctx context.Context, key string) (string, error)

	// Type returns the storage type identifier ("local" or "s3").
	Type() string
}
