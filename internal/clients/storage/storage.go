package storage

import (
	"context"
	"errors"
)

// ErrObjectNotFound is returned when a requested object key does not exist
var ErrObjectNotFound = errors.New("object not found")

// FileStore holds uploaded receipt images and the bonus asset inventory.
// S3Store serves production; LocalStore serves development and tests.
type FileStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
