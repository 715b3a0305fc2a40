package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// FileUpload is an in-memory file attached to a multipart create/update.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

func (f FileUpload) Size() int64 { return int64(len(f.Data)) }

// doMultipart sends a multipart/form-data request with plain string fields
// and zero or more files per field name.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, files map[string][]FileUpload, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}
	for name, uploads := range files {
		for _, f := range uploads {
			part, err := createFilePart(w, name, f)
			if err != nil {
				return err
			}
			if _, err := part.Write(f.Data); err != nil {
				return fmt.Errorf("failed to write file %s: %w", f.Name, err)
			}
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, nil, &buf, w.FormDataContentType())
	if err != nil {
		return err
	}
	return c.send(req, out)
}

func createFilePart(w *multipart.Writer, field string, f FileUpload) (partWriter, error) {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, escapeQuotes(f.Name)))
	ct := f.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart file part for %s: %w", field, err)
	}
	return part, nil
}

type partWriter interface {
	Write(p []byte) (int, error)
}

func escapeQuotes(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
