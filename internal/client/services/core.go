// Package services contains the application services of the Smart Trace
// CLI. Each resource service combines its endpoint module with the local
// snapshot cache and enforces two rules the views rely on: every mutation
// invalidates and refetches the affected list, and a fetch that resolves
// after a newer one has started is discarded rather than applied.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"github.com/smarttrace/smarttrace-cli/internal/client/api"
	"github.com/smarttrace/smarttrace-cli/internal/client/cache"
	"github.com/smarttrace/smarttrace-cli/internal/logging"
)

// ErrStaleResponse marks a fetch whose result arrived after a newer fetch
// of the same list had already started. The result carries no cache write
// and callers drop it.
var ErrStaleResponse = errors.New("stale response discarded")

// ListResult is a fetched list plus where it came from. FromCache is true
// only on the fallback path, when the backend was unreachable and a prior
// snapshot existed.
type ListResult[T any] struct {
	Items     []T
	FromCache bool
	FetchedAt time.Time
}

// listCore is the shared list plumbing of every resource service.
type listCore[T any] struct {
	resource string
	cache    cache.Repository
	log      logging.Logger
	now      func() time.Time

	gen atomic.Int64
}

func newListCore[T any](resource string, repo cache.Repository, log logging.Logger) *listCore[T] {
	return &listCore[T]{resource: resource, cache: repo, log: log, now: time.Now}
}

// fetch runs fetcher, snapshots its result under the base resource key,
// and falls back to the last snapshot when the backend is unreachable.
// A result superseded by a newer fetch returns ErrStaleResponse and
// leaves the cache untouched.
func (c *listCore[T]) fetch(ctx context.Context, fetcher func(context.Context) ([]T, error)) (*ListResult[T], error) {
	return c.fetchKey(ctx, c.resource, fetcher)
}

// fetchScoped is fetch under a qualified snapshot key, so an
// owner-scoped listing and the full listing never share a snapshot.
func (c *listCore[T]) fetchScoped(ctx context.Context, scope string, fetcher func(context.Context) ([]T, error)) (*ListResult[T], error) {
	return c.fetchKey(ctx, c.resource+":"+scope, fetcher)
}

func (c *listCore[T]) fetchKey(ctx context.Context, key string, fetcher func(context.Context) ([]T, error)) (*ListResult[T], error) {
	myGen := c.gen.Add(1)

	items, err := fetcher(ctx)
	if err != nil {
		if !unreachable(err) {
			return nil, err
		}
		if snap, cerr := c.cache.Get(ctx, key); cerr == nil {
			var cached []T
			if jerr := json.Unmarshal(snap.Payload, &cached); jerr == nil {
				c.log.Warn(ctx, "fetch failed, serving cached snapshot",
					"resource", key, "fetched_at", snap.FetchedAt, "err", err)
				return &ListResult[T]{Items: cached, FromCache: true, FetchedAt: snap.FetchedAt}, nil
			}
		}
		return nil, err
	}

	if c.gen.Load() != myGen {
		return nil, ErrStaleResponse
	}

	fetchedAt := c.now()
	if payload, merr := json.Marshal(items); merr == nil {
		if perr := c.cache.Put(ctx, key, payload, fetchedAt); perr != nil {
			c.log.Warn(ctx, "snapshot write failed", "resource", key, "err", perr)
		}
	}

	return &ListResult[T]{Items: items, FetchedAt: fetchedAt}, nil
}

// unreachable reports whether the failure means the backend could not
// serve the request at all. Rejections (401/403/404/validation) must
// reach the caller, never a cached copy.
func unreachable(err error) bool {
	return errors.Is(err, api.ErrNetworkUnavailable) ||
		errors.Is(err, api.ErrTimeout) ||
		errors.Is(err, api.ErrServer)
}

// refresh invalidates the resource's snapshots (the owner-scoped ones
// included) and refetches so dependent views see the post-mutation list.
// The refetch error is logged, not returned: the mutation itself already
// succeeded.
func (c *listCore[T]) refresh(ctx context.Context, fetcher func(context.Context) ([]T, error)) {
	if err := c.cache.Invalidate(ctx, c.resource); err != nil {
		c.log.Warn(ctx, "snapshot invalidation failed", "resource", c.resource, "err", err)
		return
	}
	if _, err := c.fetch(ctx, fetcher); err != nil && !errors.Is(err, ErrStaleResponse) {
		c.log.Warn(ctx, "post-mutation refetch failed", "resource", c.resource, "err", err)
	}
}
