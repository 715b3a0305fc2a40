package listview

import (
	"context"

	"github.com/example/martadmin/pkg/api"
	"github.com/example/martadmin/pkg/models"
	"github.com/example/martadmin/pkg/validate"
	"go.uber.org/zap"
)

type Categories struct {
	*Controller[models.Category]
	client *api.Client
}

func NewCategories(client *api.Client, logger *zap.Logger, notify Notifier, auditor Auditor) *Categories {
	desc := Descriptor[models.Category]{
		Resource: "categories",
		Label:    "Category",
		Fetch:    client.ListCategories,
		SearchFields: func(c models.Category) []string {
			return []string{c.Title}
		},
		SortKey: func(c models.Category) int64 {
			return models.ParseTimestamp(c.CreatedAt).UnixMilli()
		},
		Stats: activeStats(func(c models.Category) bool { return c.IsActive }),
	}
	return &Categories{
		Controller: New(desc, logger, notify, auditor),
		client:     client,
	}
}

func (c *Categories) Create(ctx context.Context, f api.CategoryForm) error {
	if err := validate.Category(f, true); err != nil {
		return err
	}
	return c.Mutate(ctx, ActionCreate, func(ctx context.Context) (string, error) {
		created, err := c.client.CreateCategory(ctx, f)
		if err != nil {
			return "", err
		}
		return created.ID, nil
	})
}

func (c *Categories) Update(ctx context.Context, id string, f api.CategoryForm) error {
	if err := validate.Category(f, false); err != nil {
		return err
	}
	return c.Mutate(ctx, ActionUpdate, func(ctx context.Context) (string, error) {
		return id, c.client.UpdateCategory(ctx, id, f)
	})
}

func (c *Categories) SetStatus(ctx context.Context, id string, active bool) error {
	return c.Mutate(ctx, ActionSetStatus, func(ctx context.Context) (string, error) {
		return id, c.client.SetCategoryStatus(ctx, id, active)
	})
}

func (c *Categories) Delete(ctx context.Context, id string) error {
	return c.Mutate(ctx, ActionDelete, func(ctx context.Context) (string, error) {
		return id, c.client.DeleteCategory(ctx, id)
	})
}
