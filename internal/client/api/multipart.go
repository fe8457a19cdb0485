package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// buildMultipart writes each scalar field individually, then streams the
// file under fileField when filePath is non-empty. Returns the encoded
// body and the Content-Type carrying the boundary.
func buildMultipart(fields map[string]string, fileField, filePath string) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("writing field %s: %w", name, err)
		}
	}

	if filePath != "" {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, "", fmt.Errorf("opening upload file: %w", err)
		}
		defer f.Close()

		part, err := w.CreateFormFile(fileField, filepath.Base(filePath))
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, "", fmt.Errorf("copying upload file: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// formFields flattens a draft struct into the string map a multipart form
// wants, going through its JSON tags so the wire names stay in one place.
// Empty values are dropped rather than sent as blank fields.
func formFields(draft any) (map[string]string, error) {
	data, err := json.Marshal(draft)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	fields := make(map[string]string, len(raw))
	for k, v := range raw {
		switch value := v.(type) {
		case string:
			if value != "" {
				fields[k] = value
			}
		case nil:
		default:
			fields[k] = fmt.Sprint(value)
		}
	}
	return fields, nil
}
