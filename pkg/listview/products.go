package listview

import (
	"context"

	"github.com/example/martadmin/pkg/api"
	"github.com/example/martadmin/pkg/models"
	"github.com/example/martadmin/pkg/validate"
	"go.uber.org/zap"
)

type Products struct {
	*Controller[models.Product]
	client *api.Client
}

func NewProducts(client *api.Client, logger *zap.Logger, notify Notifier, auditor Auditor) *Products {
	desc := Descriptor[models.Product]{
		Resource: "products",
		Label:    "Product",
		Fetch: func(ctx context.Context) ([]models.Product, error) {
			return client.ListProducts(ctx, "")
		},
		SearchFields: func(p models.Product) []string {
			return []string{p.Name, p.Category.Title, p.Description}
		},
		SortKey: func(p models.Product) int64 {
			return models.ParseTimestamp(p.CreatedAt).UnixMilli()
		},
		Filters: map[string]func(models.Product) string{
			"category": func(p models.Product) string { return p.Category.ID },
			"unit":     func(p models.Product) string { return p.Unit },
		},
		Stats: productStats,
	}
	return &Products{
		Controller: New(desc, logger, notify, auditor),
		client:     client,
	}
}

// productStats adds total inventory value on top of the active partition.
func productStats(items []models.Product) Stats {
	stats := activeStats(func(p models.Product) bool { return p.IsActive })(items)
	value := 0.0
	outOfStock := 0
	for _, p := range items {
		value += p.Price * float64(p.StockQuantity)
		if p.StockQuantity == 0 {
			outOfStock++
		}
	}
	stats["inventoryValue"] = value
	stats["outOfStock"] = float64(outOfStock)
	return stats
}

func (p *Products) Create(ctx context.Context, f api.ProductForm) error {
	if err := validate.Product(f, true); err != nil {
		return err
	}
	return p.Mutate(ctx, ActionCreate, func(ctx context.Context) (string, error) {
		created, err := p.client.CreateProduct(ctx, f)
		if err != nil {
			return "", err
		}
		return created.ID, nil
	})
}

func (p *Products) Update(ctx context.Context, id string, f api.ProductForm) error {
	if err := validate.Product(f, false); err != nil {
		return err
	}
	return p.Mutate(ctx, ActionUpdate, func(ctx context.Context) (string, error) {
		return id, p.client.UpdateProduct(ctx, id, f)
	})
}

func (p *Products) SetStatus(ctx context.Context, id string, active bool) error {
	return p.Mutate(ctx, ActionSetStatus, func(ctx context.Context) (string, error) {
		return id, p.client.SetProductStatus(ctx, id, active)
	})
}

func (p *Products) Delete(ctx context.Context, id string) error {
	return p.Mutate(ctx, ActionDelete, func(ctx context.Context) (string, error) {
		return id, p.client.DeleteProduct(ctx, id)
	})
}
