package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/smarttrace/smarttrace-cli/internal/client/models"
)

// LostAPI is the endpoint module for lost-item reports.
type LostAPI struct {
	g      *Gateway
	routes ResourceRoutes
}

// List returns every lost-item report. Order is whatever the backend
// returns; it is not guaranteed stable across calls.
func (a *LostAPI) List(ctx context.Context) ([]models.LostItem, error) {
	var items []models.LostItem
	if err := a.g.getJSON(ctx, a.routes.List, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListByOwner returns the reports filed by the given email. The owner
// identity is an explicit argument; callers source it from the session.
func (a *LostAPI) ListByOwner(ctx context.Context, email string) ([]models.LostItem, error) {
	if email == "" {
		return nil, &Error{Kind: ErrValidation, Message: "owner email is required"}
	}
	var items []models.LostItem
	query := url.Values{"email": {email}}
	if err := a.g.getJSON(ctx, a.routes.ByEmail, query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID fetches a single report. Returns ErrNotFound when the backend
// answers 404.
func (a *LostAPI) GetByID(ctx context.Context, id string) (*models.LostItem, error) {
	if id == "" {
		return nil, &Error{Kind: ErrValidation, Message: "id is required"}
	}
	var item models.LostItem
	if err := a.g.getJSON(ctx, fmt.Sprintf(a.routes.Item, id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create submits a new report. With an imagePath the request goes out as
// multipart form data, scalar fields appended individually and the photo
// under the resource's configured field name; without one it is plain JSON.
func (a *LostAPI) Create(ctx context.Context, draft models.LostItemDraft, imagePath string) (*models.LostItem, error) {
	var created models.LostItem

	if imagePath == "" {
		if err := a.g.postJSON(ctx, a.routes.Create, draft, &created); err != nil {
			return nil, err
		}
		return &created, nil
	}

	fields, err := formFields(draft)
	if err != nil {
		return nil, fmt.Errorf("flattening report fields: %w", err)
	}
	if err := a.g.postMultipart(ctx, a.routes.Create, fields, a.routes.ImageField, imagePath, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update applies a partial update (PATCH semantics): only the keys present
// in fields are touched.
func (a *LostAPI) Update(ctx context.Context, id string, fields map[string]any) error {
	if id == "" {
		return &Error{Kind: ErrValidation, Message: "id is required"}
	}
	return a.g.patchJSON(ctx, fmt.Sprintf(a.routes.Update, id), fields, nil)
}

// Delete removes a report. A second delete of the same id surfaces
// ErrNotFound, never a crash.
func (a *LostAPI) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &Error{Kind: ErrValidation, Message: "id is required"}
	}
	return a.g.deleteResource(ctx, fmt.Sprintf(a.routes.Delete, id))
}
