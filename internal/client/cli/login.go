package cli

import (
	"context"
	"fmt"
)

// Login prompts for credentials and authenticates against the backend.
func (a *App) Login(ctx context.Context) error {
	email, err := GetRequiredText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", email)
	return nil
}

// Logout clears the saved session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
