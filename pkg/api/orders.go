package api

import (
	"context"
	"net/http"

	"github.com/example/martadmin/pkg/models"
)

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	return c.listOrders(ctx, "/api/orders")
}

// ListGlobalOrders returns orders placed against the platform directly,
// without a store attached.
func (c *Client) ListGlobalOrders(ctx context.Context) ([]models.Order, error) {
	return c.listOrders(ctx, "/api/orders/global")
}

func (c *Client) ListStoreOrders(ctx context.Context, storeID string) ([]models.Order, error) {
	return c.listOrders(ctx, "/api/orders/store/"+storeID)
}

func (c *Client) listOrders(ctx context.Context, path string) ([]models.Order, error) {
	var out []models.Order
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SetOrderStatus(ctx context.Context, id, status string) error {
	body := map[string]string{"status": status}
	return c.doJSON(ctx, http.MethodPatch, "/api/orders/"+id+"/status", nil, body, nil)
}

func (c *Client) SetOrderPaymentStatus(ctx context.Context, id, paymentStatus string) error {
	body := map[string]string{"paymentStatus": paymentStatus}
	return c.doJSON(ctx, http.MethodPatch, "/api/orders/"+id+"/payment-status", nil, body, nil)
}

// DeleteOrder removes an order from admin listings. The backend treats this
// as a soft delete; from this side it behaves like any other delete.
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/orders/"+id, nil, nil, nil)
}
