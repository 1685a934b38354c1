package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	fhttp "github.com/bogdanfinn/fhttp"

	"github.com/careercrafter/crafter/internal/models"
)

// CreateHRRequest is the signup payload.
type CreateHRRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CompanyID int64  `json:"companyId"`
}

// Companies lists all companies for the signup pick list.
func (c *Client) Companies(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	if err := c.get(ctx, "/api/company/all", nil, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// CreateHR registers a new HR account.
func (c *Client) CreateHR(ctx context.Context, req CreateHRRequest) (*models.Profile, error) {
	var created models.Profile
	if err := c.post(ctx, "/api/hr/create", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UploadPhoto sends a profile photo as an opaque multipart blob.
func (c *Client) UploadPhoto(ctx context.Context, hrID int64, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("photo", filepath.Base(path))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodPost, c.endpoint(fmt.Sprintf("/api/hr/upload-photo/%d", hrID), nil), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, nil)
}
