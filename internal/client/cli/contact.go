package cli

import (
	"context"
	"fmt"

	"github.com/smarttrace/smarttrace-cli/internal/client/models"
)

// Contact submits a message through the public contact form.
func (a *App) Contact(ctx context.Context) error {
	msg := models.ContactMessage{}

	var err error
	if msg.FirstName, err = GetRequiredText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if msg.LastName, err = GetSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}
	if msg.Email, err = GetRequiredText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if msg.Subject, err = GetRequiredText(a.reader, "Subject", a.out); err != nil {
		return err
	}
	if msg.Message, err = GetRequiredText(a.reader, "Message", a.out); err != nil {
		return err
	}

	if err := a.contacts.Send(ctx, msg); err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Message sent. We'll get back to you by email.")
	return nil
}
