package listview

import (
	"context"

	"github.com/example/martadmin/pkg/api"
	"github.com/example/martadmin/pkg/models"
	"github.com/example/martadmin/pkg/validate"
	"go.uber.org/zap"
)

type DeliveryBoys struct {
	*Controller[models.DeliveryBoy]
	client *api.Client
}

func NewDeliveryBoys(client *api.Client, logger *zap.Logger, notify Notifier, auditor Auditor) *DeliveryBoys {
	desc := Descriptor[models.DeliveryBoy]{
		Resource: "delivery-boys",
		Label:    "Delivery boy",
		Fetch:    client.ListDeliveryBoys,
		SearchFields: func(d models.DeliveryBoy) []string {
			return []string{d.Name, d.Phone, d.City}
		},
		SortKey: func(d models.DeliveryBoy) int64 {
			return models.ParseTimestamp(d.CreatedAt).UnixMilli()
		},
		Filters: map[string]func(models.DeliveryBoy) string{
			"city": func(d models.DeliveryBoy) string { return d.City },
		},
		Stats: activeStats(func(d models.DeliveryBoy) bool { return d.IsActive }),
	}
	return &DeliveryBoys{
		Controller: New(desc, logger, notify, auditor),
		client:     client,
	}
}

func (d *DeliveryBoys) Create(ctx context.Context, f api.DeliveryBoyForm) error {
	if err := validate.DeliveryBoy(f, true); err != nil {
		return err
	}
	return d.Mutate(ctx, ActionCreate, func(ctx context.Context) (string, error) {
		created, err := d.client.CreateDeliveryBoy(ctx, f)
		if err != nil {
			return "", err
		}
		return created.ID, nil
	})
}

func (d *DeliveryBoys) Update(ctx context.Context, id string, f api.DeliveryBoyForm) error {
	if err := validate.DeliveryBoy(f, false); err != nil {
		return err
	}
	return d.Mutate(ctx, ActionUpdate, func(ctx context.Context) (string, error) {
		return id, d.client.UpdateDeliveryBoy(ctx, id, f)
	})
}

func (d *DeliveryBoys) SetStatus(ctx context.Context, id string, active bool) error {
	return d.Mutate(ctx, ActionSetStatus, func(ctx context.Context) (string, error) {
		return id, d.client.SetDeliveryBoyStatus(ctx, id, active)
	})
}

func (d *DeliveryBoys) Delete(ctx context.Context, id string) error {
	return d.Mutate(ctx, ActionDelete, func(ctx context.Context) (string, error) {
		return id, d.client.DeleteDeliveryBoy(ctx, id)
	})
}
