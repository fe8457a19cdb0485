package api

import (
	"context"

	"github.com/smarttrace/smarttrace-cli/internal/client/models"
)

// AuthAPI is the endpoint module for authentication. Only the HTTP
// exchange lives here; persisting the returned credentials is the auth
// service's job.
type AuthAPI struct {
	g      *Gateway
	routes AuthRoutes
}

// RegisterPayload carries the sign-up form fields.
type RegisterPayload struct {
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Password string `json:"password"`
}

// Login exchanges credentials for tokens. Callers persist the result to
// the session store.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (*models.Credentials, error) {
	if email == "" || password == "" {
		return nil, &Error{Kind: ErrValidation, Message: "email and password are required"}
	}

	payload := map[string]string{"email": email, "password": password}
	var creds models.Credentials
	if err := a.g.postJSON(ctx, a.routes.Login, payload, &creds); err != nil {
		return nil, err
	}
	if creds.Email == "" {
		creds.Email = email
	}
	return &creds, nil
}

// Register creates an account. The backend sends a verification code to
// the email; the account stays inactive until VerifyEmail succeeds.
func (a *AuthAPI) Register(ctx context.Context, payload RegisterPayload) error {
	if payload.Email == "" || payload.Password == "" {
		return &Error{Kind: ErrValidation, Message: "email and password are required"}
	}
	return a.g.postJSON(ctx, a.routes.Register, payload, nil)
}

// VerifyEmail confirms the code mailed during registration.
func (a *AuthAPI) VerifyEmail(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return &Error{Kind: ErrValidation, Message: "email and code are required"}
	}
	payload := map[string]string{"email": email, "code": code}
	return a.g.postJSON(ctx, a.routes.VerifyEmail, payload, nil)
}

// ResendCode asks the backend to mail a fresh verification code.
func (a *AuthAPI) ResendCode(ctx context.Context, email string) error {
	if email == "" {
		return &Error{Kind: ErrValidation, Message: "email is required"}
	}
	payload := map[string]string{"email": email}
	return a.g.postJSON(ctx, a.routes.ResendCode, payload, nil)
}
