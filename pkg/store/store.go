// Package store provides the durable key-value record store behind
// liftlog's persistence boundary.
//
// The application keeps exactly two logical records: the workout-entry
// collection and the weekly-plan record. Backends implement Store over
// opaque serialized payloads; records.go layers typed JSON access with
// schema validation on top. Persistence failures on load are absorbed at
// this boundary: they are logged and the caller receives a default value,
// never an error.
package store

import (
	"context"
	"errors"
)

// Record keys for the two logical records.
const (
	KeyWorkouts = "workouts"
	KeyPlan     = "plan"
)

// ErrClosed is returned for operations on a closed store.
var ErrClosed = errors.New("store: closed")

// Store is a durable key-value record store over serializable payloads.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get retrieves a record payload by key.
	// Returns (nil, nil) if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set persists a record payload, overwriting any existing one.
	Set(ctx context.Context, key string, data []byte) error

	// Remove deletes a record. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
