package services

import (
	"context"

	"github.com/smarttrace/smarttrace-cli/internal/client/cache"
	"github.com/smarttrace/smarttrace-cli/internal/client/models"
	"github.com/smarttrace/smarttrace-cli/internal/logging"
)

type matchesAPI interface {
	List(ctx context.Context) ([]models.MatchRecord, error)
	GetByID(ctx context.Context, id string) (*models.MatchRecord, error)
	Delete(ctx context.Context, id string) error
}

// MatchService exposes match records. The backend owns matching; the
// client reads the records and admins can delete them.
type MatchService interface {
	List(ctx context.Context) (*ListResult[models.MatchRecord], error)
	Get(ctx context.Context, id string) (*models.MatchRecord, error)
	Delete(ctx context.Context, id string) error
}

type matchService struct {
	api  matchesAPI
	core *listCore[models.MatchRecord]
}

func NewMatchService(a matchesAPI, repo cache.Repository, log logging.Logger) MatchService {
	return &matchService{api: a, core: newListCore[models.MatchRecord]("matches", repo, log)}
}

func (s *matchService) List(ctx context.Context) (*ListResult[models.MatchRecord], error) {
	return s.core.fetch(ctx, s.api.List)
}

func (s *matchService) Get(ctx context.Context, id string) (*models.MatchRecord, error) {
	return s.api.GetByID(ctx, id)
}

func (s *matchService) Delete(ctx context.Context, id string) error {
	err := s.api.Delete(ctx, id)
	if err == nil || isGone(err) {
		s.core.refresh(ctx, s.api.List)
	}
	return err
}
