package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage is the blob store holding uploaded resumes.
type Storage interface {
	// Save stores the file under key, overwriting any existing blob.
	Save(ctx context.Context, key string, reader io.Reader) error

	// Open returns a reader for the blob at key.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists reports whether a blob is stored under key.
	Exists(ctx context.Context, key string) (bool, error)

	// Delete removes the blob at key; missing blobs are not an error.
	Delete(ctx context.Context, key string) error
}

// Config holds storage configuration.
type Config struct {
	Type     string // only "local" is implemented
	BasePath string
}

// NewStorage builds a storage backend from configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg.BasePath)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
