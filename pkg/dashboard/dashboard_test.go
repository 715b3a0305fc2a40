package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/example/martadmin/pkg/api"
	"github.com/example/martadmin/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type toastRecorder struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (r *toastRecorder) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, msg)
}

func (r *toastRecorder) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, msg)
}

func snapshotFixture() *models.DashboardSnapshot {
	return &models.DashboardSnapshot{
		Revenue: models.RevenueBlock{WeeklyData: []models.RevenuePoint{
			{Date: "2024-04-01", Revenue: 1200},
			{Date: "2024-04-02", Revenue: 900},
		}},
		OrderStatus: models.OrderStatusBreakdown{Pending: 4, Delivered: 12},
		CategoryPerformance: []models.CategoryPerformance{
			{Category: models.CategoryRef{ID: "c1", Title: "Dairy"}, ProductCount: 14},
			{Category: models.CategoryRef{}, ProductCount: 3},
		},
		Summary: models.DashboardSummary{
			Users:   models.SummaryEntry{Total: 120, Growth: 4.2, Active: 110, Blocked: 10},
			Orders:  models.SummaryEntry{Total: 48, Delivered: 30, Pending: 8},
			Revenue: models.SummaryEntry{Total: 58000, Growth: -1.5},
		},
		RecentUsers: []models.RecentUser{
			{ID: "u1", FullName: "Asha", CreatedAt: "2024-04-03T10:00:00Z"},
			{ID: "u2", FullName: "Ravi", CreatedAt: "2024-04-05T10:00:00Z"},
			{ID: "u3", FullName: "Meera", CreatedAt: "2024-04-01T10:00:00Z"},
			{ID: "u4", FullName: "Kiran", CreatedAt: "2024-04-06T10:00:00Z"},
		},
		RecentStores: []models.RecentStore{
			{ID: "s1", StoreName: "Fresh Mart", CreatedAt: "2024-04-04T10:00:00Z"},
			{ID: "s2", StoreName: "No Timestamp"},
		},
		RecentProducts: []models.RecentProduct{
			{ID: "p1", Name: "Premium Milk", CreatedAt: "2024-04-02T10:00:00Z"},
		},
	}
}

func TestStatusDistributionFixedBuckets(t *testing.T) {
	dist := StatusDistribution(snapshotFixture())
	require.Len(t, dist, 5)
	assert.Equal(t, StatusCount{models.OrderPending, 4}, dist[0])
	assert.Equal(t, StatusCount{models.OrderConfirmed, 0}, dist[1], "absent statuses still appear")
	assert.Equal(t, StatusCount{models.OrderDelivered, 12}, dist[3])
}

func TestCategorySlicesUnknownTitle(t *testing.T) {
	slices := CategorySlices(snapshotFixture())
	require.Len(t, slices, 2)
	assert.Equal(t, CategorySlice{Title: "Dairy", ProductCount: 14}, slices[0])
	assert.Equal(t, CategorySlice{Title: "Unknown", ProductCount: 3}, slices[1])
}

func TestSummaryCardsDefaults(t *testing.T) {
	cards := SummaryCards(snapshotFixture())
	require.Len(t, cards, 6)

	byKey := map[string]SummaryCard{}
	for _, card := range cards {
		byKey[card.Key] = card
	}
	assert.Equal(t, 120.0, byKey["users"].Total)
	assert.Equal(t, 10, byKey["users"].Breakdown["blocked"])
	assert.Equal(t, 30, byKey["orders"].Breakdown["delivered"])
	assert.Equal(t, -1.5, byKey["revenue"].Growth)
	assert.Equal(t, 0.0, byKey["stores"].Total, "missing summary blocks read as zero")
	assert.Equal(t, 0, byKey["categories"].Breakdown["active"])
}

func TestAlertSeverities(t *testing.T) {
	qs := &models.QuickStats{
		LowStockCount:      12, // above the high threshold of 10
		PendingOrders:      9,
		PendingStoreOrders: 6, // combined 15, between medium 10 and high 20
		BlockedUsers:       2, // at or below medium 3
		DeliveredOrders:    400,
	}
	cards := AlertCards(qs)
	require.Len(t, cards, 4)

	byKey := map[string]AlertCard{}
	for _, card := range cards {
		byKey[card.Key] = card
	}
	assert.Equal(t, SeverityHigh, byKey["lowStock"].Severity)
	assert.Equal(t, 15, byKey["pendingOrders"].Count, "both pending sub-counts add up")
	assert.Equal(t, SeverityMedium, byKey["pendingOrders"].Severity)
	assert.Equal(t, SeverityLow, byKey["blockedUsers"].Severity)
	assert.Equal(t, SeverityLow, byKey["deliveredOrders"].Severity, "delivered is informational only")
}

func TestSeverityBoundaries(t *testing.T) {
	assert.Equal(t, SeverityLow, severityFor(5, 5, 10), "thresholds are exclusive")
	assert.Equal(t, SeverityMedium, severityFor(6, 5, 10))
	assert.Equal(t, SeverityMedium, severityFor(10, 5, 10))
	assert.Equal(t, SeverityHigh, severityFor(11, 5, 10))
}

func TestRecentActivityMerge(t *testing.T) {
	feed := RecentActivity(snapshotFixture())

	// 3 newest users + 1 timestamped store + 1 product, newest first.
	require.Len(t, feed, 5)
	assert.Equal(t, "Kiran", feed[0].Label)
	assert.Equal(t, "Ravi", feed[1].Label)
	assert.Equal(t, "Fresh Mart", feed[2].Label)
	for _, entry := range feed {
		assert.NotEqual(t, "No Timestamp", entry.Label, "entries without a timestamp are dropped")
		assert.NotEqual(t, "Meera", entry.Label, "only the three newest users qualify")
	}
	assert.False(t, feed[0].CreatedAt.Before(feed[len(feed)-1].CreatedAt))
}

func TestRecentActivityDoesNotReorderSnapshot(t *testing.T) {
	snap := snapshotFixture()
	before := append([]models.RecentUser(nil), snap.RecentUsers...)
	RecentActivity(snap)
	assert.Equal(t, before, snap.RecentUsers)
}

type dashboardBackend struct {
	mu        sync.Mutex
	failQuick bool
	period    string
}

func (b *dashboardBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/dashboard/admin", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(snapshotFixture())
	})
	mux.HandleFunc("/api/dashboard/quick-stats", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		fail := b.failQuick
		b.mu.Unlock()
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "stats unavailable"})
			return
		}
		json.NewEncoder(w).Encode(models.QuickStats{LowStockCount: 2})
	})
	mux.HandleFunc("/api/dashboard/analytics/period", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.period = r.URL.Query().Get("type")
		b.mu.Unlock()
		json.NewEncoder(w).Encode(models.PeriodAnalytics{
			Type:   r.URL.Query().Get("type"),
			Series: []models.RevenuePoint{{Date: "2024-04-01", Revenue: 300}},
		})
	})
	return mux
}

func newTestAggregator(t *testing.T, backend *dashboardBackend) (*Aggregator, *toastRecorder) {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	toasts := &toastRecorder{}
	client := api.NewClient(srv.URL, nil, zap.NewNop())
	return NewAggregator(client, zap.NewNop(), toasts), toasts
}

func TestRefreshBuildsView(t *testing.T) {
	backend := &dashboardBackend{}
	agg, toasts := newTestAggregator(t, backend)

	view, err := agg.Refresh(context.Background(), "month")
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, StateLoaded, agg.State())
	assert.Equal(t, "month", view.Period)
	assert.Len(t, view.RevenueSeries, 2)
	assert.Len(t, view.PeriodSeries, 1)
	assert.Len(t, view.SummaryCards, 6)
	assert.Len(t, view.AlertCards, 4)
	assert.Empty(t, toasts.errors)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Equal(t, "month", backend.period)
}

func TestRefreshAllOrNothing(t *testing.T) {
	backend := &dashboardBackend{}
	agg, toasts := newTestAggregator(t, backend)

	_, err := agg.Refresh(context.Background(), "week")
	require.NoError(t, err)
	require.NotNil(t, agg.View())

	backend.mu.Lock()
	backend.failQuick = true
	backend.mu.Unlock()

	view, err := agg.Refresh(context.Background(), "week")
	require.Error(t, err)
	assert.Nil(t, view)
	assert.Equal(t, StateError, agg.State())
	assert.Nil(t, agg.View(), "a failed refresh keeps no partial data")
	assert.Equal(t, []string{"stats unavailable"}, toasts.errors, "exactly one toast per failed refresh")
}

func TestRefreshInvalidPeriodFallsBack(t *testing.T) {
	backend := &dashboardBackend{}
	agg, _ := newTestAggregator(t, backend)

	view, err := agg.Refresh(context.Background(), "fortnight")
	require.NoError(t, err)
	assert.Equal(t, DefaultPeriod, view.Period)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Equal(t, DefaultPeriod, backend.period)
}
