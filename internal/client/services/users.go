package services

import (
	"context"

	"github.com/smarttrace/smarttrace-cli/internal/client/cache"
	"github.com/smarttrace/smarttrace-cli/internal/client/models"
	"github.com/smarttrace/smarttrace-cli/internal/logging"
)

type usersAPI interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// UserService exposes the admin user directory: read and delete only.
type UserService interface {
	List(ctx context.Context) (*ListResult[models.User], error)
	Get(ctx context.Context, id string) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	api  usersAPI
	core *listCore[models.User]
}

func NewUserService(a usersAPI, repo cache.Repository, log logging.Logger) UserService {
	return &userService{api: a, core: newListCore[models.User]("users", repo, log)}
}

func (s *userService) List(ctx context.Context) (*ListResult[models.User], error) {
	return s.core.fetch(ctx, s.api.List)
}

func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.api.GetByID(ctx, id)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	err := s.api.Delete(ctx, id)
	if err == nil || isGone(err) {
		s.core.refresh(ctx, s.api.List)
	}
	return err
}
