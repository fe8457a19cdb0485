package services

import (
	"context"

	"github.com/smarttrace/smarttrace-cli/internal/client/cache"
	"github.com/smarttrace/smarttrace-cli/internal/client/models"
	"github.com/smarttrace/smarttrace-cli/internal/client/session"
	"github.com/smarttrace/smarttrace-cli/internal/logging"
)

type foundAPI interface {
	List(ctx context.Context) ([]models.FoundItem, error)
	ListByOwner(ctx context.Context, email string) ([]models.FoundItem, error)
	GetByID(ctx context.Context, id string) (*models.FoundItem, error)
	Create(ctx context.Context, draft models.FoundItemDraft, imagePath string) (*models.FoundItem, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// FoundService exposes found-item operations to the views. The operation
// set mirrors LostService.
type FoundService interface {
	List(ctx context.Context) (*ListResult[models.FoundItem], error)
	ListMine(ctx context.Context) (*ListResult[models.FoundItem], error)
	Get(ctx context.Context, id string) (*models.FoundItem, error)
	Report(ctx context.Context, draft models.FoundItemDraft, imagePath string) (*models.FoundItem, error)
	Edit(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type foundService struct {
	api     foundAPI
	session session.Store
	core    *listCore[models.FoundItem]
}

func NewFoundService(a foundAPI, sess session.Store, repo cache.Repository, log logging.Logger) FoundService {
	return &foundService{
		api:     a,
		session: sess,
		core:    newListCore[models.FoundItem]("found", repo, log),
	}
}

func (s *foundService) List(ctx context.Context) (*ListResult[models.FoundItem], error) {
	return s.core.fetch(ctx, s.api.List)
}

func (s *foundService) ListMine(ctx context.Context) (*ListResult[models.FoundItem], error) {
	email := s.session.Current().Email
	return s.core.fetchScoped(ctx, email, func(ctx context.Context) ([]models.FoundItem, error) {
		return s.api.ListByOwner(ctx, email)
	})
}

func (s *foundService) Get(ctx context.Context, id string) (*models.FoundItem, error) {
	return s.api.GetByID(ctx, id)
}

func (s *foundService) Report(ctx context.Context, draft models.FoundItemDraft, imagePath string) (*models.FoundItem, error) {
	created, err := s.api.Create(ctx, draft, imagePath)
	if err != nil {
		return nil, err
	}
	s.core.refresh(ctx, s.api.List)
	return created, nil
}

func (s *foundService) Edit(ctx context.Context, id string, fields map[string]any) error {
	if err := s.api.Update(ctx, id, fields); err != nil {
		return err
	}
	s.core.refresh(ctx, s.api.List)
	return nil
}

func (s *foundService) Delete(ctx context.Context, id string) error {
	err := s.api.Delete(ctx, id)
	if err == nil || isGone(err) {
		s.core.refresh(ctx, s.api.List)
	}
	return err
}
