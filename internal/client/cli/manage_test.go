package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smarttrace/smarttrace-cli/internal/client/api"
	"github.com/smarttrace/smarttrace-cli/internal/client/models"
	"github.com/smarttrace/smarttrace-cli/internal/client/services"
)

type fakeLostService struct {
	item *models.LostItem

	editedID     string
	editedFields map[string]any

	deletedIDs []string
	deleteErr  error
}

func (f *fakeLostService) List(ctx context.Context) (*services.ListResult[models.LostItem], error) {
	return &services.ListResult[models.LostItem]{}, nil
}
func (f *fakeLostService) ListMine(ctx context.Context) (*services.ListResult[models.LostItem], error) {
	return &services.ListResult[models.LostItem]{}, nil
}
func (f *fakeLostService) Get(ctx context.Context, id string) (*models.LostItem, error) {
	if f.item == nil {
		return nil, api.ErrNotFound
	}
	return f.item, nil
}
func (f *fakeLostService) Report(ctx context.Context, draft models.LostItemDraft, imagePath string) (*models.LostItem, error) {
	return f.item, nil
}
func (f *fakeLostService) Edit(ctx context.Context, id string, fields map[string]any) error {
	f.editedID = id
	f.editedFields = fields
	return nil
}
func (f *fakeLostService) Delete(ctx context.Context, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return f.deleteErr
}

func newManageApp(input string, lost *fakeLostService) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	app := &App{
		lost:   lost,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    &out,
	}
	return app, &out
}

func TestShowLost(t *testing.T) {
	lost := &fakeLostService{item: &models.LostItem{
		ID:            "7",
		Title:         "Galaxy S21",
		Category:      "phone",
		Brand:         "Samsung",
		SerialNumber:  "SN-1",
		ReporterEmail: "a@b.com",
	}}
	app, out := newManageApp("", lost)

	err := app.Show(context.Background(), "lost", "7")
	require.NoError(t, err)
	require.Contains(t, out.String(), "Galaxy S21")
	require.Contains(t, out.String(), "SN-1")
	require.Contains(t, out.String(), "a@b.com")
}

func TestShowLost_NotFound(t *testing.T) {
	app, out := newManageApp("", &fakeLostService{})

	err := app.Show(context.Background(), "lost", "7")
	require.Error(t, err)
	require.NotEmpty(t, out.String())
}

func TestEditLost(t *testing.T) {
	lost := &fakeLostService{}
	app, out := newManageApp("title=New Title\n brand = Apple \n\n", lost)

	err := app.Edit(context.Background(), "lost", "7")
	require.NoError(t, err)
	require.Equal(t, "7", lost.editedID)
	require.Equal(t, map[string]any{"title": "New Title", "brand": "Apple"}, lost.editedFields)
	require.Contains(t, out.String(), "Updated.")
}

func TestEditLost_NothingEntered(t *testing.T) {
	lost := &fakeLostService{}
	app, out := newManageApp("\n", lost)

	err := app.Edit(context.Background(), "lost", "7")
	require.NoError(t, err)
	require.Empty(t, lost.editedID)
	require.Contains(t, out.String(), "Nothing to change.")
}

func TestEdit_UnsupportedResource(t *testing.T) {
	lost := &fakeLostService{}
	app, out := newManageApp("", lost)

	err := app.Edit(context.Background(), "matches", "7")
	require.NoError(t, err)
	require.Contains(t, out.String(), "Only lost and found reports can be edited.")
}

func TestDeleteLost_Confirmed(t *testing.T) {
	lost := &fakeLostService{}
	app, out := newManageApp("y\n", lost)

	err := app.Delete(context.Background(), "lost", "7")
	require.NoError(t, err)
	require.Equal(t, []string{"7"}, lost.deletedIDs)
	require.Contains(t, out.String(), "Deleted.")
}

func TestDeleteLost_Cancelled(t *testing.T) {
	lost := &fakeLostService{}
	app, out := newManageApp("\n", lost)

	err := app.Delete(context.Background(), "lost", "7")
	require.NoError(t, err)
	require.Empty(t, lost.deletedIDs)
	require.Contains(t, out.String(), "Cancelled.")
}

func TestDeleteLost_AlreadyGone(t *testing.T) {
	lost := &fakeLostService{deleteErr: api.ErrNotFound}
	app, out := newManageApp("y\n", lost)

	err := app.Delete(context.Background(), "lost", "7")
	require.NoError(t, err)
	require.Contains(t, out.String(), "Already deleted.")
}
