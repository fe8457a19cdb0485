package cli

import (
	"context"
	"fmt"

	"github.com/smarttrace/smarttrace-cli/internal/client/models"
)

// ReportLost walks through the lost-device report form and submits it.
// An image path, when given, turns the submission into a multipart
// upload.
func (a *App) ReportLost(ctx context.Context) error {
	draft := models.LostItemDraft{}

	var err error
	if draft.Title, err = GetRequiredText(a.reader, "Title (e.g. Black iPhone 13)", a.out); err != nil {
		return err
	}
	if draft.Category, err = GetRequiredText(a.reader, "Category (phone/laptop/tablet/...)", a.out); err != nil {
		return err
	}
	if draft.Brand, err = GetSimpleText(a.reader, "Brand", a.out); err != nil {
		return err
	}
	if draft.SerialNumber, err = GetSimpleText(a.reader, "Serial number", a.out); err != nil {
		return err
	}
	if draft.Description, err = GetSimpleText(a.reader, "Additional info", a.out); err != nil {
		return err
	}
	if draft.State, err = GetSimpleText(a.reader, "State", a.out); err != nil {
		return err
	}
	if draft.District, err = GetSimpleText(a.reader, "District", a.out); err != nil {
		return err
	}
	if draft.Province, err = GetSimpleText(a.reader, "Province", a.out); err != nil {
		return err
	}
	if draft.Address, err = GetSimpleText(a.reader, "Address", a.out); err != nil {
		return err
	}
	if draft.DateLost, err = GetSimpleText(a.reader, "Date lost (YYYY-MM-DD)", a.out); err != nil {
		return err
	}
	if draft.TimeLost, err = GetSimpleText(a.reader, "Time lost (HH:MM)", a.out); err != nil {
		return err
	}
	if draft.ReporterName, err = GetRequiredText(a.reader, "Your name", a.out); err != nil {
		return err
	}
	if draft.ReporterEmail, err = GetRequiredText(a.reader, "Your email", a.out); err != nil {
		return err
	}
	if draft.ReporterPhone, err = GetSimpleText(a.reader, "Your phone", a.out); err != nil {
		return err
	}

	imagePath, err := GetSimpleText(a.reader, "Photo file path (optional)", a.out)
	if err != nil {
		return err
	}

	created, err := a.lost.Report(ctx, draft, imagePath)
	if err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Report submitted, id %s\n", created.ID)
	return nil
}

// ReportFound walks through the found-device report form and submits it.
func (a *App) ReportFound(ctx context.Context) error {
	draft := models.FoundItemDraft{}

	var err error
	if draft.Name, err = GetRequiredText(a.reader, "Device name", a.out); err != nil {
		return err
	}
	if draft.Category, err = GetRequiredText(a.reader, "Category", a.out); err != nil {
		return err
	}
	if draft.SerialNumber, err = GetSimpleText(a.reader, "Serial number", a.out); err != nil {
		return err
	}
	if draft.Description, err = GetSimpleText(a.reader, "Description", a.out); err != nil {
		return err
	}
	if draft.Location, err = GetSimpleText(a.reader, "Where was it found", a.out); err != nil {
		return err
	}
	if draft.Address, err = GetSimpleText(a.reader, "Address", a.out); err != nil {
		return err
	}
	if draft.District, err = GetSimpleText(a.reader, "District", a.out); err != nil {
		return err
	}
	if draft.Province, err = GetSimpleText(a.reader, "Province", a.out); err != nil {
		return err
	}
	if draft.FinderFirstName, err = GetRequiredText(a.reader, "Your first name", a.out); err != nil {
		return err
	}
	if draft.FinderLastName, err = GetSimpleText(a.reader, "Your last name", a.out); err != nil {
		return err
	}
	if draft.FinderEmail, err = GetRequiredText(a.reader, "Your email", a.out); err != nil {
		return err
	}
	if draft.FinderPhone, err = GetSimpleText(a.reader, "Your phone", a.out); err != nil {
		return err
	}

	imagePath, err := GetSimpleText(a.reader, "Photo file path (optional)", a.out)
	if err != nil {
		return err
	}

	created, err := a.found.Report(ctx, draft, imagePath)
	if err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Report submitted, id %s\n", created.ID)
	return nil
}
