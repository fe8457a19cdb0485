package api

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarttrace/smarttrace-cli/internal/client/models"
)

func parseParts(t *testing.T, body []byte, contentType string) map[string]string {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	parts := map[string]string{}
	mr := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(p)
		require.NoError(t, err)
		parts[p.FormName()] = string(data)
	}
	return parts
}

func TestBuildMultipart_FieldsAndFile(t *testing.T) {
	imgPath := filepath.Join(t.TempDir(), "phone.jpg")
	require.NoError(t, os.WriteFile(imgPath, []byte("jpegbytes"), 0o600))

	fields := map[string]string{"title": "Black phone", "category": "phone"}
	body, contentType, err := buildMultipart(fields, "deviceimage", imgPath)
	require.NoError(t, err)

	parts := parseParts(t, body, contentType)
	assert.Equal(t, "Black phone", parts["title"])
	assert.Equal(t, "phone", parts["category"])
	assert.Equal(t, "jpegbytes", parts["deviceimage"])
}

func TestBuildMultipart_NoFile(t *testing.T) {
	body, contentType, err := buildMultipart(map[string]string{"subject": "hi"}, "image", "")
	require.NoError(t, err)

	parts := parseParts(t, body, contentType)
	assert.Equal(t, map[string]string{"subject": "hi"}, parts)
}

func TestBuildMultipart_MissingFile(t *testing.T) {
	_, _, err := buildMultipart(nil, "image", filepath.Join(t.TempDir(), "gone.jpg"))
	assert.Error(t, err)
}

func TestFormFields_UsesJSONTagsAndDropsEmpty(t *testing.T) {
	draft := models.LostItemDraft{
		Title:        "Black phone",
		SerialNumber: "SN-1",
		// everything else empty
	}

	fields, err := formFields(draft)
	require.NoError(t, err)

	assert.Equal(t, "Black phone", fields["title"])
	assert.Equal(t, "SN-1", fields["serial_number"])
	_, hasBrand := fields["brand"]
	assert.False(t, hasBrand)
}
