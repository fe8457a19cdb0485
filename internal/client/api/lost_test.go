package api

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarttrace/smarttrace-cli/internal/client/models"
)

func TestLostAPI_ListAndByOwner(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/devices/lost/list/":
			json.NewEncoder(w).Encode([]models.LostItem{{ID: "1", Title: "Phone"}, {ID: "2", Title: "Laptop"}})
		case "/api/devices/lost/by-email/":
			assert.Equal(t, "alice@example.com", r.URL.Query().Get("email"))
			json.NewEncoder(w).Encode([]models.LostItem{{ID: "1", Title: "Phone"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	g := newTestGateway(t, handler, &fakeSession{})

	items, err := g.Lost().List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Phone", items[0].Title)

	mine, err := g.Lost().ListByOwner(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
}

func TestLostAPI_ListByOwner_RequiresEmail(t *testing.T) {
	g := newTestGateway(t, http.NotFoundHandler(), &fakeSession{})

	_, err := g.Lost().ListByOwner(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLostAPI_GetByID_NotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	g := newTestGateway(t, handler, &fakeSession{})

	_, err := g.Lost().GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLostAPI_CreateJSON(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/devices/lost/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var draft models.LostItemDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "Black phone", draft.Title)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.LostItem{ID: "10", Title: draft.Title})
	})
	g := newTestGateway(t, handler, &fakeSession{})

	created, err := g.Lost().Create(context.Background(), models.LostItemDraft{Title: "Black phone"}, "")
	require.NoError(t, err)
	assert.Equal(t, models.ID("10"), created.ID)
}

func TestLostAPI_CreateMultipartWithImage(t *testing.T) {
	imgPath := filepath.Join(t.TempDir(), "phone.jpg")
	require.NoError(t, os.WriteFile(imgPath, []byte("jpegbytes"), 0o600))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Black phone", r.FormValue("title"))

		f, hdr, err := r.FormFile("deviceimage")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "phone.jpg", hdr.Filename)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.LostItem{ID: "11"})
	})
	g := newTestGateway(t, handler, &fakeSession{})

	created, err := g.Lost().Create(context.Background(), models.LostItemDraft{Title: "Black phone"}, imgPath)
	require.NoError(t, err)
	assert.Equal(t, models.ID("11"), created.ID)
}

func TestLostAPI_UpdateUsesPatch(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/devices/lost/7/", r.URL.Path)

		var fields map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		assert.Equal(t, map[string]any{"title": "Edited"}, fields)

		w.Write([]byte(`{}`))
	})
	g := newTestGateway(t, handler, &fakeSession{})

	require.NoError(t, g.Lost().Update(context.Background(), "7", map[string]any{"title": "Edited"}))
}

func TestLostAPI_DeleteTwiceSurfacesNotFound(t *testing.T) {
	deleted := map[string]bool{}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		if deleted[r.URL.Path] {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		deleted[r.URL.Path] = true
		w.WriteHeader(http.StatusNoContent)
	})
	g := newTestGateway(t, handler, &fakeSession{})

	require.NoError(t, g.Lost().Delete(context.Background(), "7"))

	err := g.Lost().Delete(context.Background(), "7")
	assert.ErrorIs(t, err, ErrNotFound)
}
