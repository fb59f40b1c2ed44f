// Package blob stores check-in photos and returns durable URLs for them.
package blob

import (
	"context"
	"errors"
)

// ErrInvalidKey is returned for object keys that would escape the store.
var ErrInvalidKey = errors.New("invalid object key")

// Store writes objects and returns the URL they can be fetched from.
type Store interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	// Delete removes the object behind a URL returned by Put. Deleting a
	// missing object is not an error.
	Delete(ctx context.Context, url string) error
}
