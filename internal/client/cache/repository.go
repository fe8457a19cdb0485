package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNoSnapshot is returned when no cached copy exists for a resource.
var ErrNoSnapshot = errors.New("no cached snapshot")

// Snapshot is one cached list, stored as its JSON payload.
type Snapshot struct {
	Resource  string
	Payload   []byte
	FetchedAt time.Time
}

// Repository stores at most one snapshot per resource key. Keys may carry
// a query scope after a colon ("lost:alice@example.com"); Invalidate of a
// base key drops its scoped variants too.
type Repository interface {
	Put(ctx context.Context, resource string, payload []byte, fetchedAt time.Time) error
	Get(ctx context.Context, resource string) (*Snapshot, error)
	Invalidate(ctx context.Context, resource string) error
}
