package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/example/martadmin/pkg/models"
)

type ProductForm struct {
	Name          string
	CategoryID    string
	Price         float64
	OfferPrice    float64
	StockQuantity int
	Unit          string
	Description   string
	Images        []FileUpload
}

func (f ProductForm) fields() map[string]string {
	return map[string]string{
		"name":          f.Name,
		"category":      f.CategoryID,
		"price":         strconv.FormatFloat(f.Price, 'f', -1, 64),
		"offerPrice":    strconv.FormatFloat(f.OfferPrice, 'f', -1, 64),
		"stockQuantity": strconv.Itoa(f.StockQuantity),
		"unit":          f.Unit,
		"description":   f.Description,
	}
}

func (f ProductForm) files() map[string][]FileUpload {
	if len(f.Images) == 0 {
		return nil
	}
	return map[string][]FileUpload{"images": f.Images}
}

// ListProducts returns every product; categoryID narrows the list server-side
// when non-empty.
func (c *Client) ListProducts(ctx context.Context, categoryID string) ([]models.Product, error) {
	var query url.Values
	if categoryID != "" {
		query = url.Values{"categoryId": {categoryID}}
	}
	var out []models.Product
	if err := c.doJSON(ctx, http.MethodGet, "/api/products/admin/list/all", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, f ProductForm) (*models.Product, error) {
	var out models.Product
	if err := c.doMultipart(ctx, http.MethodPost, "/api/products", f.fields(), f.files(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, f ProductForm) error {
	return c.doMultipart(ctx, http.MethodPatch, "/api/products/"+id, f.fields(), f.files(), nil)
}

func (c *Client) SetProductStatus(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"isActive": active}
	return c.doJSON(ctx, http.MethodPatch, "/api/products/"+id+"/status", nil, body, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/products/"+id, nil, nil, nil)
}
