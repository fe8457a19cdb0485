package services

import (
	"context"
	"errors"

	"github.com/smarttrace/smarttrace-cli/internal/client/api"
	"github.com/smarttrace/smarttrace-cli/internal/client/cache"
	"github.com/smarttrace/smarttrace-cli/internal/client/models"
	"github.com/smarttrace/smarttrace-cli/internal/client/session"
	"github.com/smarttrace/smarttrace-cli/internal/logging"
)

// lostAPI is the endpoint surface this service needs. *api.LostAPI
// satisfies it; tests provide fakes.
type lostAPI interface {
	List(ctx context.Context) ([]models.LostItem, error)
	ListByOwner(ctx context.Context, email string) ([]models.LostItem, error)
	GetByID(ctx context.Context, id string) (*models.LostItem, error)
	Create(ctx context.Context, draft models.LostItemDraft, imagePath string) (*models.LostItem, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// LostService exposes lost-item operations to the views.
type LostService interface {
	List(ctx context.Context) (*ListResult[models.LostItem], error)
	ListMine(ctx context.Context) (*ListResult[models.LostItem], error)
	Get(ctx context.Context, id string) (*models.LostItem, error)
	Report(ctx context.Context, draft models.LostItemDraft, imagePath string) (*models.LostItem, error)
	Edit(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type lostService struct {
	api     lostAPI
	session session.Store
	core    *listCore[models.LostItem]
}

// NewLostService constructs a LostService bound to the given endpoint
// module, session store and snapshot cache.
func NewLostService(a lostAPI, sess session.Store, repo cache.Repository, log logging.Logger) LostService {
	return &lostService{
		api:     a,
		session: sess,
		core:    newListCore[models.LostItem]("lost", repo, log),
	}
}

func (s *lostService) List(ctx context.Context) (*ListResult[models.LostItem], error) {
	return s.core.fetch(ctx, s.api.List)
}

// ListMine lists the reports owned by the logged-in user. The owner email
// is taken from the session here, at the caller boundary, and passed to
// the data layer explicitly. The snapshot is keyed by that email so it
// never stands in for the full listing.
func (s *lostService) ListMine(ctx context.Context) (*ListResult[models.LostItem], error) {
	email := s.session.Current().Email
	return s.core.fetchScoped(ctx, email, func(ctx context.Context) ([]models.LostItem, error) {
		return s.api.ListByOwner(ctx, email)
	})
}

func (s *lostService) Get(ctx context.Context, id string) (*models.LostItem, error) {
	return s.api.GetByID(ctx, id)
}

func (s *lostService) Report(ctx context.Context, draft models.LostItemDraft, imagePath string) (*models.LostItem, error) {
	created, err := s.api.Create(ctx, draft, imagePath)
	if err != nil {
		return nil, err
	}
	s.core.refresh(ctx, s.api.List)
	return created, nil
}

func (s *lostService) Edit(ctx context.Context, id string, fields map[string]any) error {
	if err := s.api.Update(ctx, id, fields); err != nil {
		return err
	}
	s.core.refresh(ctx, s.api.List)
	return nil
}

// Delete removes a report. A repeat delete surfaces api.ErrNotFound; the
// list is refreshed either way so the cached copy matches the backend.
func (s *lostService) Delete(ctx context.Context, id string) error {
	err := s.api.Delete(ctx, id)
	if err == nil || isGone(err) {
		s.core.refresh(ctx, s.api.List)
	}
	return err
}

func isGone(err error) bool {
	return errors.Is(err, api.ErrNotFound)
}
