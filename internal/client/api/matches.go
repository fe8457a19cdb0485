package api

import (
	"context"
	"fmt"

	"github.com/smarttrace/smarttrace-cli/internal/client/models"
)

// MatchesAPI is the endpoint module for lost/found match records. The
// backend proposes and confirms matches; the client only reads and, for
// admins, deletes them.
type MatchesAPI struct {
	g      *Gateway
	routes ResourceRoutes
}

func (a *MatchesAPI) List(ctx context.Context) ([]models.MatchRecord, error) {
	var matches []models.MatchRecord
	if err := a.g.getJSON(ctx, a.routes.List, nil, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (a *MatchesAPI) GetByID(ctx context.Context, id string) (*models.MatchRecord, error) {
	if id == "" {
		return nil, &Error{Kind: ErrValidation, Message: "id is required"}
	}
	var match models.MatchRecord
	if err := a.g.getJSON(ctx, fmt.Sprintf(a.routes.Item, id), nil, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func (a *MatchesAPI) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &Error{Kind: ErrValidation, Message: "id is required"}
	}
	return a.g.deleteResource(ctx, fmt.Sprintf(a.routes.Delete, id))
}
