package api

import (
	"context"
	"net/http"

	"github.com/example/martadmin/pkg/models"
)

type CategoryForm struct {
	Title string
	Image *FileUpload
}

func (f CategoryForm) fields() map[string]string {
	return map[string]string{"title": f.Title}
}

func (f CategoryForm) files() map[string][]FileUpload {
	if f.Image == nil {
		return nil
	}
	return map[string][]FileUpload{"image": {*f.Image}}
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.doJSON(ctx, http.MethodGet, "/api/categories/admin", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, f CategoryForm) (*models.Category, error) {
	var out models.Category
	if err := c.doMultipart(ctx, http.MethodPost, "/api/categories", f.fields(), f.files(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, f CategoryForm) error {
	return c.doMultipart(ctx, http.MethodPatch, "/api/categories/"+id, f.fields(), f.files(), nil)
}

func (c *Client) SetCategoryStatus(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"isActive": active}
	return c.doJSON(ctx, http.MethodPatch, "/api/categories/"+id+"/status", nil, body, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/categories/"+id, nil, nil, nil)
}
