package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/smarttrace/smarttrace-cli/internal/client/models"
)

// FoundAPI is the endpoint module for found-item reports. Same operation
// set as LostAPI; the two resources differ only in shape and routes.
type FoundAPI struct {
	g      *Gateway
	routes ResourceRoutes
}

func (a *FoundAPI) List(ctx context.Context) ([]models.FoundItem, error) {
	var items []models.FoundItem
	if err := a.g.getJSON(ctx, a.routes.List, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (a *FoundAPI) ListByOwner(ctx context.Context, email string) ([]models.FoundItem, error) {
	if email == "" {
		return nil, &Error{Kind: ErrValidation, Message: "owner email is required"}
	}
	var items []models.FoundItem
	query := url.Values{"email": {email}}
	if err := a.g.getJSON(ctx, a.routes.ByEmail, query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (a *FoundAPI) GetByID(ctx context.Context, id string) (*models.FoundItem, error) {
	if id == "" {
		return nil, &Error{Kind: ErrValidation, Message: "id is required"}
	}
	var item models.FoundItem
	if err := a.g.getJSON(ctx, fmt.Sprintf(a.routes.Item, id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (a *FoundAPI) Create(ctx context.Context, draft models.FoundItemDraft, imagePath string) (*models.FoundItem, error) {
	var created models.FoundItem

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

func (a *FoundAPI) Update(ctx context.Context, id string, fields map[string]any) error {
	if id == "" {
		return &Error{Kind: ErrValidation, Message: "id is required"}
	}
	return a.g.patchJSON(ctx, fmt.Sprintf(a.routes.Update, id), fields, nil)
}

func (a *FoundAPI) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &Error{Kind: ErrValidation, Message: "id is required"}
	}
	return a.g.deleteResource(ctx, fmt.Sprintf(a.routes.Delete, id))
}
