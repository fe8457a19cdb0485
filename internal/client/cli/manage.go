package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smarttrace/smarttrace-cli/internal/client/api"
	"github.com/smarttrace/smarttrace-cli/internal/client/models"
)

// Show prints the detail view of a single record.
func (a *App) Show(ctx context.Context, resource, id string) error {
	switch resource {
	case "lost":
		item, err := a.lost.Get(ctx, id)
		if err != nil {
			a.printErr(err)
			return err
		}
		a.printLostItem(item)

	case "found":
		item, err := a.found.Get(ctx, id)
		if err != nil {
			a.printErr(err)
			return err
		}
		a.printFoundItem(item)

	case "contacts":
		msg, err := a.contacts.Get(ctx, id)
		if err != nil {
			a.printErr(err)
			return err
		}
		fmt.Fprintf(a.out, "From:    %s %s <%s>\n", msg.FirstName, msg.LastName, msg.Email)
		fmt.Fprintf(a.out, "Subject: %s\n%s\n", msg.Subject, msg.Message)

	case "users":
		user, err := a.users.Get(ctx, id)
		if err != nil {
			a.printErr(err)
			return err
		}
		fmt.Fprintf(a.out, "%s %s <%s> phone:%s location:%s\n",
			user.Name, user.LastName, user.Email, user.Phone, user.Location)

	case "matches":
		match, err := a.matches.Get(ctx, id)
		if err != nil {
			a.printErr(err)
			return err
		}
		fmt.Fprintf(a.out, "Match %s: %s (%s)\n", match.ID, match.Status, match.MatchDate)
		fmt.Fprintf(a.out, "  lost by:  %s <%s> %s\n", match.Loster.Name, match.Loster.Email, match.Loster.Phone)
		fmt.Fprintf(a.out, "  found by: %s <%s> %s\n", match.Founder.Name, match.Founder.Email, match.Founder.Phone)

	default:
		fmt.Fprintln(a.out, "Unknown resource:", resource)
	}

	return nil
}

// Edit collects field=value pairs and applies them as a partial update.
func (a *App) Edit(ctx context.Context, resource, id string) error {
	if resource != "lost" && resource != "found" {
		fmt.Fprintln(a.out, "Only lost and found reports can be edited.")
		return nil
	}

	fmt.Fprintln(a.out, "Enter changes as field=value, one per line (empty line to finish)")

	fields := map[string]any{}
	for {
		line, err := a.reader.ReadString('\n')
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		name, value, ok := strings.Cut(line, "=")
		if !ok {
			fmt.Fprintln(a.out, "Expected field=value")
			continue
		}
		fields[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	if len(fields) == 0 {
		fmt.Fprintln(a.out, "Nothing to change.")
		return nil
	}

	var err error
	if resource == "lost" {
		err = a.lost.Edit(ctx, id, fields)
	} else {
		err = a.found.Edit(ctx, id, fields)
	}
	if err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Updated.")
	return nil
}

// Delete removes a record after confirmation. Deleting something already
// gone reports it rather than failing loudly.
func (a *App) Delete(ctx context.Context, resource, id string) error {
	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete %s %s? (y/N)", resource, id), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	switch resource {
	case "lost":
		err = a.lost.Delete(ctx, id)
	case "found":
		err = a.found.Delete(ctx, id)
	case "contacts":
		err = a.contacts.Delete(ctx, id)
	case "users":
		err = a.users.Delete(ctx, id)
	case "matches":
		err = a.matches.Delete(ctx, id)
	default:
		fmt.Fprintln(a.out, "Unknown resource:", resource)
		return nil
	}

	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "Already deleted.")
			return nil
		}
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

func (a *App) printLostItem(item *models.LostItem) {
	fmt.Fprintf(a.out, "%s (%s)\n", item.Title, item.Category)
	fmt.Fprintf(a.out, "  brand:  %s  serial: %s\n", item.Brand, item.SerialNumber)
	fmt.Fprintf(a.out, "  where:  %s %s %s %s\n", item.Address, item.District, item.State, item.Province)
	fmt.Fprintf(a.out, "  when:   %s %s\n", item.DateLost, item.TimeLost)
	fmt.Fprintf(a.out, "  owner:  %s <%s> %s\n", item.ReporterName, item.ReporterEmail, item.ReporterPhone)
	if item.Description != "" {
		fmt.Fprintf(a.out, "  notes:  %s\n", item.Description)
	}
	if item.ImageURL != "" {
		fmt.Fprintf(a.out, "  photo:  %s\n", item.ImageURL)
	}
}

func (a *App) printFoundItem(item *models.FoundItem) {
	fmt.Fprintf(a.out, "%s (%s)\n", item.Name, item.Category)
	fmt.Fprintf(a.out, "  serial: %s\n", item.SerialNumber)
	fmt.Fprintf(a.out, "  where:  %s %s %s %s\n", item.Location, item.Address, item.District, item.Province)
	fmt.Fprintf(a.out, "  finder: %s %s <%s> %s\n", item.FinderFirstName, item.FinderLastName, item.FinderEmail, item.FinderPhone)
	if item.Description != "" {
		fmt.Fprintf(a.out, "  notes:  %s\n", item.Description)
	}
	if item.ImageURL != "" {
		fmt.Fprintf(a.out, "  photo:  %s\n", item.ImageURL)
	}
}
