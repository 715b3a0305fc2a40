package api

import (
	"context"
	"net/http"

	"github.com/example/martadmin/pkg/models"
)

type DeliveryBoyForm struct {
	Name         string
	Phone        string
	Email        string
	Address      string
	City         string
	State        string
	Pincode      string
	ProfileImage *FileUpload
	Document     *FileUpload
}

func (f DeliveryBoyForm) fields() map[string]string {
	return map[string]string{
		"name":    f.Name,
		"phone":   f.Phone,
		"email":   f.Email,
		"address": f.Address,
		"city":    f.City,
		"state":   f.State,
		"pincode": f.Pincode,
	}
}

func (f DeliveryBoyForm) files() map[string][]FileUpload {
	files := map[string][]FileUpload{}
	if f.ProfileImage != nil {
		files["profileImage"] = []FileUpload{*f.ProfileImage}
	}
	if f.Document != nil {
		files["document"] = []FileUpload{*f.Document}
	}
	if len(files) == 0 {
		return nil
	}
	return files
}

func (c *Client) ListDeliveryBoys(ctx context.Context) ([]models.DeliveryBoy, error) {
	var out []models.DeliveryBoy
	if err := c.doJSON(ctx, http.MethodGet, "/api/delivery-boys/admin", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateDeliveryBoy(ctx context.Context, f DeliveryBoyForm) (*models.DeliveryBoy, error) {
	var out models.DeliveryBoy
	if err := c.doMultipart(ctx, http.MethodPost, "/api/delivery-boys", f.fields(), f.files(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDeliveryBoy(ctx context.Context, id string, f DeliveryBoyForm) error {
	return c.doMultipart(ctx, http.MethodPatch, "/api/delivery-boys/"+id, f.fields(), f.files(), nil)
}

func (c *Client) SetDeliveryBoyStatus(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"isActive": active}
	return c.doJSON(ctx, http.MethodPatch, "/api/delivery-boys/"+id+"/status", nil, body, nil)
}

func (c *Client) DeleteDeliveryBoy(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/delivery-boys/"+id, nil, nil, nil)
}
