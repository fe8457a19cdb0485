// Package listview provides the shared filter-and-paginate controller
// behind every listing view. Views hand it a fetched list, a free-text
// query and a page size; it hands back the rows to render plus the
// metadata for a "Showing X to Y of Z results" footer.
//
// All filtering happens in memory over an already-fetched list. That is a
// deliberate tradeoff: it is only correct while lists stay small enough to
// fetch in full, and server-side paging would be needed past that ceiling.
package listview

import "strings"

// Field extracts one searchable string from an item. Accessors must
// tolerate zero values and simply return "" for anything missing.
type Field[T any] func(T) string

// Page is one renderable page plus its navigation metadata. Index fields
// are 1-based; both are 0 when the filtered list is empty.
type Page[T any] struct {
	Items           []T
	CurrentPage     int
	TotalPages      int
	TotalCount      int
	FirstIndexShown int
	LastIndexShown  int
}

// Controller filters a list by case-insensitive substring match across its
// configured fields and slices the result into pages. Re-filtering clamps
// the current page immediately, so a view can never observe an
// out-of-range page after changing the query.
type Controller[T any] struct {
	fields   []Field[T]
	pageSize int

	items    []T
	filtered []T
	query    string
	current  int
}

// New builds a controller. A non-positive pageSize is treated as 1.
func New[T any](pageSize int, fields ...Field[T]) *Controller[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Controller[T]{fields: fields, pageSize: pageSize, current: 1}
}

// SetItems replaces the backing list (nil means empty, as for a view whose
// fetch has not resolved yet) and re-applies the current query.
func (c *Controller[T]) SetItems(items []T) {
	c.items = items
	c.refilter()
}

// SetQuery applies a new free-text query. An empty or whitespace-only
// query matches everything.
func (c *Controller[T]) SetQuery(query string) {
	c.query = query
	c.refilter()
}

// Query returns the current free-text query as set.
func (c *Controller[T]) Query() string { return c.query }

func (c *Controller[T]) refilter() {
	q := strings.ToLower(strings.TrimSpace(c.query))

	if q == "" {
		c.filtered = c.items
	} else {
		filtered := make([]T, 0, len(c.items))
		for _, item := range c.items {
			if c.matches(item, q) {
				filtered = append(filtered, item)
			}
		}
		c.filtered = filtered
	}

	// Clamp as part of applying the filter, not later in the view: an
	// out-of-range current page must never be observable.
	c.current = c.clamp(c.current)
}

// matches reports whether any configured field contains q (logical OR).
func (c *Controller[T]) matches(item T, q string) bool {
	for _, field := range c.fields {
		if strings.Contains(strings.ToLower(field(item)), q) {
			return true
		}
	}
	return false
}

// TotalPages is 0 for an empty filtered list.
func (c *Controller[T]) TotalPages() int {
	return (len(c.filtered) + c.pageSize - 1) / c.pageSize
}

func (c *Controller[T]) clamp(page int) int {
	total := c.TotalPages()
	if total == 0 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// GoTo moves to page n, clamped to the valid range. Out-of-range requests
// are a no-op landing on the nearest boundary, never an error.
func (c *Controller[T]) GoTo(n int) { c.current = c.clamp(n) }

// First moves to page 1.
func (c *Controller[T]) First() { c.current = c.clamp(1) }

// Previous moves one page back; a no-op on page 1.
func (c *Controller[T]) Previous() { c.current = c.clamp(c.current - 1) }

// Next moves one page forward; a no-op on the last page.
func (c *Controller[T]) Next() { c.current = c.clamp(c.current + 1) }

// Last moves to the final page.
func (c *Controller[T]) Last() { c.current = c.clamp(c.TotalPages()) }

// Snapshot computes the current page. The result is self-contained:
// rendering rows and the results footer needs no further computation.
func (c *Controller[T]) Snapshot() Page[T] {
	total := c.TotalPages()
	count := len(c.filtered)

	if count == 0 {
		return Page[T]{Items: []T{}, CurrentPage: c.current, TotalPages: 0, TotalCount: 0}
	}

	start := (c.current - 1) * c.pageSize
	end := start + c.pageSize
	if end > count {
		end = count
	}

	return Page[T]{
		Items:           c.filtered[start:end],
		CurrentPage:     c.current,
		TotalPages:      total,
		TotalCount:      count,
		FirstIndexShown: start + 1,
		LastIndexShown:  end,
	}
}
