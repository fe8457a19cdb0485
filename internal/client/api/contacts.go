package api

import (
	"context"
	"fmt"

	"github.com/smarttrace/smarttrace-cli/internal/client/models"
)

// ContactsAPI is the endpoint module for contact-form messages. Create is
// public (no auth required, the gateway simply has no token to attach);
// list, get and delete are admin operations.
type ContactsAPI struct {
	g      *Gateway
	routes ResourceRoutes
}

func (a *ContactsAPI) List(ctx context.Context) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	if err := a.g.getJSON(ctx, a.routes.List, nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (a *ContactsAPI) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	if id == "" {
		return nil, &Error{Kind: ErrValidation, Message: "id is required"}
	}
	var msg models.ContactMessage
	if err := a.g.getJSON(ctx, fmt.Sprintf(a.routes.Item, id), nil, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (a *ContactsAPI) Create(ctx context.Context, msg models.ContactMessage) error {
	return a.g.postJSON(ctx, a.routes.Create, msg, nil)
}

func (a *ContactsAPI) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &Error{Kind: ErrValidation, Message: "id is required"}
	}
	return a.g.deleteResource(ctx, fmt.Sprintf(a.routes.Delete, id))
}
