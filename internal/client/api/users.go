package api

import (
	"context"
	"fmt"

	"github.com/smarttrace/smarttrace-cli/internal/client/models"
)

// UsersAPI is the endpoint module for the admin user directory.
type UsersAPI struct {
	g      *Gateway
	routes ResourceRoutes
}

func (a *UsersAPI) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := a.g.getJSON(ctx, a.routes.List, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *UsersAPI) GetByID(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, &Error{Kind: ErrValidation, Message: "id is required"}
	}
	var user models.User
	if err := a.g.getJSON(ctx, fmt.Sprintf(a.routes.Item, id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *UsersAPI) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &Error{Kind: ErrValidation, Message: "id is required"}
	}
	return a.g.deleteResource(ctx, fmt.Sprintf(a.routes.Delete, id))
}
