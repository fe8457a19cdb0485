package services

import (
	"context"
	"fmt"
	"time"

	"github.com/smarttrace/smarttrace-cli/internal/client/api"
	"github.com/smarttrace/smarttrace-cli/internal/client/models"
	"github.com/smarttrace/smarttrace-cli/internal/client/session"
)

type authAPI interface {
	Login(ctx context.Context, email, password string) (*models.Credentials, error)
	Register(ctx context.Context, payload api.RegisterPayload) error
	VerifyEmail(ctx context.Context, email, code string) error
	ResendCode(ctx context.Context, email string) error
}

// AuthService handles login/logout and account signup, and owns the only
// writes to the session store.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, payload api.RegisterPayload) error
	VerifyEmail(ctx context.Context, email, code string) error
	ResendCode(ctx context.Context, email string) error
	Logout(ctx context.Context) error
	CurrentEmail() string
	IsAuthenticated() bool
	TokenExpired(now time.Time) bool
}

type authService struct {
	api     authAPI
	session session.Store
}

func NewAuthService(a authAPI, sess session.Store) AuthService {
	return &authService{api: a, session: sess}
}

// Login authenticates against the backend and persists the returned
// credentials, which the gateway picks up on its next request.
func (s *authService) Login(ctx context.Context, email, password string) error {
	creds, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	sess := session.Session{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		Email:        creds.Email,
	}
	if err := s.session.Save(sess); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	return nil
}

func (s *authService) Register(ctx context.Context, payload api.RegisterPayload) error {
	return s.api.Register(ctx, payload)
}

func (s *authService) VerifyEmail(ctx context.Context, email, code string) error {
	return s.api.VerifyEmail(ctx, email, code)
}

func (s *authService) ResendCode(ctx context.Context, email string) error {
	return s.api.ResendCode(ctx, email)
}

// Logout clears the persisted session. Requests already in flight will go
// out unauthenticated and may come back 401; callers treat that like any
// other failed request.
func (s *authService) Logout(ctx context.Context) error {
	return s.session.Clear()
}

func (s *authService) CurrentEmail() string {
	return s.session.Current().Email
}

func (s *authService) IsAuthenticated() bool {
	return s.session.Current().IsAuthenticated()
}

// TokenExpired reports whether the stored access token carries an expiry
// in the past. Used by the CLI to suggest re-login before a doomed call.
func (s *authService) TokenExpired(now time.Time) bool {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		return false
	}
	return session.TokenExpired(sess.AccessToken, now)
}
