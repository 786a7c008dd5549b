package backend

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/agencydesk/go-dealer-admin/files"
	apperrors "github.com/agencydesk/go-dealer-admin/internal/errors"
	"github.com/agencydesk/go-dealer-admin/uploads"
)

var (
	_ files.API   = (*Client)(nil)
	_ uploads.API = (*Client)(nil)
)

func (c *Client) ListFiles(ctx context.Context, agencyID string) ([]files.MediaFile, error) {
	query := url.Values{"agency_id": {agencyID}}
	var list []files.MediaFile
	if err := c.do(ctx, http.MethodGet, "/api/files/", query, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) DeleteFile(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/files/"+id, nil, nil, nil)
}

// UploadFile sends one file as a multipart request with its agency,
// category and optional related entity id.
func (c *Client) UploadFile(ctx context.Context, agencyID string, category files.Category, relatedID string, staged uploads.StagedFile) (files.MediaFile, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", staged.Name)
	if err != nil {
		return files.MediaFile{}, apperrors.Wrapf(err, "upload %s: create form file", staged.Name)
	}
	if _, err := part.Write(staged.Data); err != nil {
		return files.MediaFile{}, apperrors.Wrapf(err, "upload %s: write form file", staged.Name)
	}
	if err := writer.WriteField("agency_id", agencyID); err != nil {
		return files.MediaFile{}, apperrors.Wrapf(err, "upload %s: write agency_id", staged.Name)
	}
	if err := writer.WriteField("category", string(category)); err != nil {
		return files.MediaFile{}, apperrors.Wrapf(err, "upload %s: write category", staged.Name)
	}
	if relatedID != "" {
		if err := writer.WriteField("related_id", relatedID); err != nil {
			return files.MediaFile{}, apperrors.Wrapf(err, "upload %s: write related_id", staged.Name)
		}
	}
	if err := writer.Close(); err != nil {
		return files.MediaFile{}, apperrors.Wrapf(err, "upload %s: close multipart body", staged.Name)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/files/upload", &body)
	if err != nil {
		return files.MediaFile{}, apperrors.Wrapf(err, "upload %s: build request", staged.Name)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var uploaded files.MediaFile
	if err := c.send(req, &uploaded); err != nil {
		return files.MediaFile{}, err
	}
	return uploaded, nil
}
