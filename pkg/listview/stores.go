package listview

import (
	"context"

	"github.com/example/martadmin/pkg/api"
	"github.com/example/martadmin/pkg/models"
	"github.com/example/martadmin/pkg/validate"
	"go.uber.org/zap"
)

type Stores struct {
	*Controller[models.Store]
	client *api.Client
}

func NewStores(client *api.Client, logger *zap.Logger, notify Notifier, auditor Auditor) *Stores {
	desc := Descriptor[models.Store]{
		Resource: "stores",
		Label:    "Store",
		Fetch:    client.ListStores,
		SearchFields: func(s models.Store) []string {
			return []string{s.StoreName, s.StoreCode, s.Location.City, s.ManagerName}
		},
		SortKey: func(s models.Store) int64 {
			return models.ParseTimestamp(s.CreatedAt).UnixMilli()
		},
		Filters: map[string]func(models.Store) string{
			"city":  func(s models.Store) string { return s.Location.City },
			"state": func(s models.Store) string { return s.Location.State },
		},
		Stats: activeStats(func(s models.Store) bool { return s.IsActive }),
	}
	return &Stores{
		Controller: New(desc, logger, notify, auditor),
		client:     client,
	}
}

// Products lists the products assigned to one store; this relation is
// fetched separately per store, never cached on the store list.
func (s *Stores) Products(ctx context.Context, storeID string) ([]models.Product, error) {
	return s.client.ListStoreProducts(ctx, storeID)
}

func (s *Stores) Create(ctx context.Context, f api.StoreForm) error {
	if err := validate.Store(f, true); err != nil {
		return err
	}
	return s.Mutate(ctx, ActionCreate, func(ctx context.Context) (string, error) {
		created, err := s.client.CreateStore(ctx, f)
		if err != nil {
			return "", err
		}
		return created.ID, nil
	})
}

func (s *Stores) Update(ctx context.Context, id string, f api.StoreForm) error {
	if err := validate.Store(f, false); err != nil {
		return err
	}
	return s.Mutate(ctx, ActionUpdate, func(ctx context.Context) (string, error) {
		return id, s.client.UpdateStore(ctx, id, f)
	})
}

func (s *Stores) SetStatus(ctx context.Context, id string, active bool) error {
	return s.Mutate(ctx, ActionSetStatus, func(ctx context.Context) (string, error) {
		return id, s.client.SetStoreStatus(ctx, id, active)
	})
}

func (s *Stores) Delete(ctx context.Context, id string) error {
	return s.Mutate(ctx, ActionDelete, func(ctx context.Context) (string, error) {
		return id, s.client.DeleteStore(ctx, id)
	})
}
