package listview

import (
	"context"
	"sync"

	"github.com/example/martadmin/pkg/api"
	"github.com/example/martadmin/pkg/models"
	"github.com/example/martadmin/pkg/validate"
	"go.uber.org/zap"
)

// Order list scopes: every order, only global orders, or one store's orders.
const (
	ScopeAll    = "all"
	ScopeGlobal = "global"
	ScopeStore  = "store"
)

type Orders struct {
	*Controller[models.Order]
	client *api.Client

	scopeMu sync.Mutex
	scope   string
	storeID string
}

func NewOrders(client *api.Client, logger *zap.Logger, notify Notifier, auditor Auditor) *Orders {
	o := &Orders{client: client, scope: ScopeAll}
	desc := Descriptor[models.Order]{
		Resource: "orders",
		Label:    "Order",
		Fetch:    o.fetch,
		SearchFields: func(ord models.Order) []string {
			return []string{ord.ID, ord.User.FullName, ord.User.Mobile, ord.User.Email}
		},
		SortKey: func(ord models.Order) int64 {
			return models.ParseTimestamp(ord.CreatedAt).UnixMilli()
		},
		Filters: map[string]func(models.Order) string{
			"status":        func(ord models.Order) string { return ord.Status },
			"paymentStatus": func(ord models.Order) string { return ord.PaymentStatus },
			"paymentMethod": func(ord models.Order) string { return ord.PaymentMethod },
		},
		Stats: orderStats,
	}
	o.Controller = New(desc, logger, notify, auditor)
	return o
}

func (o *Orders) fetch(ctx context.Context) ([]models.Order, error) {
	o.scopeMu.Lock()
	scope, storeID := o.scope, o.storeID
	o.scopeMu.Unlock()
	switch scope {
	case ScopeGlobal:
		return o.client.ListGlobalOrders(ctx)
	case ScopeStore:
		return o.client.ListStoreOrders(ctx, storeID)
	default:
		return o.client.ListOrders(ctx)
	}
}

// SetScope selects which list endpoint the next refresh hits. storeID is
// only used with ScopeStore.
func (o *Orders) SetScope(scope, storeID string) {
	o.scopeMu.Lock()
	defer o.scopeMu.Unlock()
	if scope != ScopeGlobal && scope != ScopeStore {
		scope = ScopeAll
	}
	o.scope = scope
	o.storeID = storeID
}

func orderStats(items []models.Order) Stats {
	stats := Stats{"total": float64(len(items))}
	revenue := 0.0
	for _, status := range models.OrderStatuses {
		stats[status] = 0
	}
	for _, ord := range items {
		stats[ord.Status]++
		revenue += ord.GrandTotal
	}
	stats["revenue"] = revenue
	return stats
}

func (o *Orders) SetStatus(ctx context.Context, id, status string) error {
	if !models.ValidOrderStatus(status) {
		return &validate.Error{Fields: []validate.FieldError{
			{Field: "status", Message: "Select a valid order status"},
		}}
	}
	return o.Mutate(ctx, ActionSetStatus, func(ctx context.Context) (string, error) {
		return id, o.client.SetOrderStatus(ctx, id, status)
	})
}

func (o *Orders) SetPaymentStatus(ctx context.Context, id, paymentStatus string) error {
	if !models.ValidPaymentStatus(paymentStatus) {
		return &validate.Error{Fields: []validate.FieldError{
			{Field: "paymentStatus", Message: "Select a valid payment status"},
		}}
	}
	return o.Mutate(ctx, ActionSetStatus, func(ctx context.Context) (string, error) {
		return id, o.client.SetOrderPaymentStatus(ctx, id, paymentStatus)
	})
}

// Delete removes the order from admin listings; whether the backend hides it
// from later list calls is its own concern.
func (o *Orders) Delete(ctx context.Context, id string) error {
	return o.Mutate(ctx, ActionDelete, func(ctx context.Context) (string, error) {
		return id, o.client.DeleteOrder(ctx, id)
	})
}
