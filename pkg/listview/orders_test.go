package listview

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/example/martadmin/pkg/api"
	"github.com/example/martadmin/pkg/models"
	"github.com/example/martadmin/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func orderFixture(id, status string, total float64) models.Order {
	return models.Order{
		ID:         id,
		Status:     status,
		GrandTotal: total,
		CreatedAt:  "2024-04-01T09:00:00Z",
	}
}

func newTestOrders(t *testing.T) (*Orders, map[string]*int) {
	t.Helper()
	calls := map[string]*int{
		"all":    new(int),
		"global": new(int),
		"store":  new(int),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		*calls["all"]++
		json.NewEncoder(w).Encode([]models.Order{
			orderFixture("o1", models.OrderPending, 100),
			orderFixture("o2", models.OrderDelivered, 250),
			orderFixture("o3", models.OrderDelivered, 150),
		})
	})
	mux.HandleFunc("/api/orders/global", func(w http.ResponseWriter, r *http.Request) {
		*calls["global"]++
		json.NewEncoder(w).Encode([]models.Order{orderFixture("g1", models.OrderPending, 80)})
	})
	mux.HandleFunc("/api/orders/store/", func(w http.ResponseWriter, r *http.Request) {
		*calls["store"]++
		assert.Equal(t, "/api/orders/store/s42", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Order{orderFixture("s1", models.OrderConfirmed, 60)})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, nil, zap.NewNop())
	return NewOrders(client, zap.NewNop(), &toastRecorder{}, nil), calls
}

func TestOrdersScopeSwitchesEndpoint(t *testing.T) {
	ctrl, calls := newTestOrders(t)
	ctx := context.Background()

	require.NoError(t, ctrl.Refresh(ctx))
	assert.Len(t, ctrl.Items(), 3)

	ctrl.SetScope(ScopeGlobal, "")
	require.NoError(t, ctrl.Refresh(ctx))
	assert.Len(t, ctrl.Items(), 1)

	ctrl.SetScope(ScopeStore, "s42")
	require.NoError(t, ctrl.Refresh(ctx))
	require.Len(t, ctrl.Items(), 1)
	assert.Equal(t, "s1", ctrl.Items()[0].ID)

	ctrl.SetScope("bogus", "")
	require.NoError(t, ctrl.Refresh(ctx))
	assert.Len(t, ctrl.Items(), 3, "unknown scopes fall back to all")

	assert.Equal(t, 2, *calls["all"])
	assert.Equal(t, 1, *calls["global"])
	assert.Equal(t, 1, *calls["store"])
}

func TestOrderStats(t *testing.T) {
	ctrl, _ := newTestOrders(t)
	require.NoError(t, ctrl.Refresh(context.Background()))

	stats := ctrl.Stats()
	assert.Equal(t, 3.0, stats["total"])
	assert.Equal(t, 1.0, stats[models.OrderPending])
	assert.Equal(t, 2.0, stats[models.OrderDelivered])
	assert.Equal(t, 0.0, stats[models.OrderCancelled], "absent statuses report zero")
	assert.Equal(t, 500.0, stats["revenue"])
}

func TestOrderStatusValidation(t *testing.T) {
	ctrl, calls := newTestOrders(t)

	var vErr *validate.Error
	require.ErrorAs(t, ctrl.SetStatus(context.Background(), "o1", "teleported"), &vErr)
	require.ErrorAs(t, ctrl.SetPaymentStatus(context.Background(), "o1", "maybe"), &vErr)
	assert.Equal(t, 0, *calls["all"], "invalid statuses never reach the upstream")
}
