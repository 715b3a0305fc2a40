package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/example/martadmin/pkg/models"
)

type StoreForm struct {
	StoreName    string
	StoreCode    string
	Address      string
	City         string
	State        string
	Pincode      string
	Country      string
	Latitude     float64
	Longitude    float64
	ManagerName  string
	ManagerPhone string
	ManagerEmail string
	OpeningHours string
	Notes        string
	Image        *FileUpload
}

func (f StoreForm) fields() map[string]string {
	return map[string]string{
		"storeName":    f.StoreName,
		"storeCode":    f.StoreCode,
		"address":      f.Address,
		"city":         f.City,
		"state":        f.State,
		"pincode":      f.Pincode,
		"country":      f.Country,
		"latitude":     strconv.FormatFloat(f.Latitude, 'f', -1, 64),
		"longitude":    strconv.FormatFloat(f.Longitude, 'f', -1, 64),
		"managerName":  f.ManagerName,
		"managerPhone": f.ManagerPhone,
		"managerEmail": f.ManagerEmail,
		"openingHours": f.OpeningHours,
		"notes":        f.Notes,
	}
}

func (f StoreForm) files() map[string][]FileUpload {
	if f.Image == nil {
		return nil
	}
	return map[string][]FileUpload{"storeImage": {*f.Image}}
}

func (c *Client) ListStores(ctx context.Context) ([]models.Store, error) {
	var out []models.Store
	if err := c.doJSON(ctx, http.MethodGet, "/api/stores/admin", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListStoreProducts returns the products listed under one store.
func (c *Client) ListStoreProducts(ctx context.Context, storeID string) ([]models.Product, error) {
	var out []models.Product
	if err := c.doJSON(ctx, http.MethodGet, "/api/stores/"+storeID+"/products", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateStore(ctx context.Context, f StoreForm) (*models.Store, error) {
	var out models.Store
	if err := c.doMultipart(ctx, http.MethodPost, "/api/stores", f.fields(), f.files(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateStore(ctx context.Context, id string, f StoreForm) error {
	return c.doMultipart(ctx, http.MethodPatch, "/api/stores/"+id, f.fields(), f.files(), nil)
}

func (c *Client) SetStoreStatus(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"isActive": active}
	return c.doJSON(ctx, http.MethodPatch, "/api/stores/"+id+"/status", nil, body, nil)
}

func (c *Client) DeleteStore(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/stores/"+id, nil, nil, nil)
}
