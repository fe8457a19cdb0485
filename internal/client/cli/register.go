package cli

import (
	"context"
	"fmt"

	"github.com/smarttrace/smarttrace-cli/internal/client/api"
)

// Register prompts for the sign-up form and creates an account. The
// backend mails a verification code; the account activates once 'verify'
// succeeds.
func (a *App) Register(ctx context.Context) error {
	payload := api.RegisterPayload{}

	var err error
	if payload.Name, err = GetRequiredText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if payload.LastName, err = GetSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}
	if payload.Email, err = GetRequiredText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if payload.Phone, err = GetSimpleText(a.reader, "Phone", a.out); err != nil {
		return err
	}
	if payload.Location, err = GetSimpleText(a.reader, "Location", a.out); err != nil {
		return err
	}
	if payload.Password, err = GetPassword(a.out); err != nil {
		return err
	}

	if err := a.auth.Register(ctx, payload); err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Account created. Check your email for a verification code, then run 'verify'.")
	return nil
}

// VerifyEmail confirms the code mailed during registration.
func (a *App) VerifyEmail(ctx context.Context) error {
	email, err := GetRequiredText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	code, err := GetRequiredText(a.reader, "Verification code", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.VerifyEmail(ctx, email, code); err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Email verified. You can log in now.")
	return nil
}

// ResendCode asks the backend for a fresh verification code.
func (a *App) ResendCode(ctx context.Context) error {
	email, err := GetRequiredText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.ResendCode(ctx, email); err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, "A new code is on its way.")
	return nil
}
