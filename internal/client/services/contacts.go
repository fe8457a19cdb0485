package services

import (
	"context"

	"github.com/smarttrace/smarttrace-cli/internal/client/cache"
	"github.com/smarttrace/smarttrace-cli/internal/client/models"
	"github.com/smarttrace/smarttrace-cli/internal/logging"
)

type contactsAPI interface {
	List(ctx context.Context) ([]models.ContactMessage, error)
	GetByID(ctx context.Context, id string) (*models.ContactMessage, error)
	Create(ctx context.Context, msg models.ContactMessage) error
	Delete(ctx context.Context, id string) error
}

// ContactService exposes contact-message operations: public submission
// plus the admin list/read/delete surface.
type ContactService interface {
	List(ctx context.Context) (*ListResult[models.ContactMessage], error)
	Get(ctx context.Context, id string) (*models.ContactMessage, error)
	Send(ctx context.Context, msg models.ContactMessage) error
	Delete(ctx context.Context, id string) error
}

type contactService struct {
	api  contactsAPI
	core *listCore[models.ContactMessage]
}

func NewContactService(a contactsAPI, repo cache.Repository, log logging.Logger) ContactService {
	return &contactService{api: a, core: newListCore[models.ContactMessage]("contacts", repo, log)}
}

func (s *contactService) List(ctx context.Context) (*ListResult[models.ContactMessage], error) {
	return s.core.fetch(ctx, s.api.List)
}

func (s *contactService) Get(ctx context.Context, id string) (*models.ContactMessage, error) {
	return s.api.GetByID(ctx, id)
}

func (s *contactService) Send(ctx context.Context, msg models.ContactMessage) error {
	if err := s.api.Create(ctx, msg); err != nil {
		return err
	}
	s.core.refresh(ctx, s.api.List)
	return nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	err := s.api.Delete(ctx, id)
	if err == nil || isGone(err) {
		s.core.refresh(ctx, s.api.List)
	}
	return err
}
