package dashboard

import (
	"sort"
	"time"

	"github.com/example/martadmin/pkg/models"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type CategorySlice struct {
	Title        string `json:"title"`
	ProductCount int    `json:"productCount"`
}

type SummaryCard struct {
	Key       string         `json:"key"`
	Label     string         `json:"label"`
	Total     float64        `json:"total"`
	Growth    float64        `json:"growth"`
	Breakdown map[string]int `json:"breakdown"`
}

type AlertCard struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Count    int      `json:"count"`
	Severity Severity `json:"severity"`
}

type Activity struct {
	Kind      string    `json:"kind"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"createdAt"`
}

// RevenueSeries lifts the weekly revenue points out of the snapshot. Missing
// revenue values decode as 0.
func RevenueSeries(snap *models.DashboardSnapshot) []models.RevenuePoint {
	out := make([]models.RevenuePoint, len(snap.Revenue.WeeklyData))
	copy(out, snap.Revenue.WeeklyData)
	return out
}

// StatusDistribution always yields the five fixed buckets, absent counts as 0.
func StatusDistribution(snap *models.DashboardSnapshot) []StatusCount {
	b := snap.OrderStatus
	return []StatusCount{
		{models.OrderPending, b.Pending},
		{models.OrderConfirmed, b.Confirmed},
		{models.OrderShipped, b.Shipped},
		{models.OrderDelivered, b.Delivered},
		{models.OrderCancelled, b.Cancelled},
	}
}

// CategorySlices maps category performance entries, naming unknown
// categories "Unknown".
func CategorySlices(snap *models.DashboardSnapshot) []CategorySlice {
	out := make([]CategorySlice, 0, len(snap.CategoryPerformance))
	for _, cp := range snap.CategoryPerformance {
		title := cp.Category.Title
		if title == "" {
			title = "Unknown"
		}
		out = append(out, CategorySlice{Title: title, ProductCount: cp.ProductCount})
	}
	return out
}

// SummaryCards yields the six fixed cards; every field of a missing summary
// block defaults to 0 independently.
func SummaryCards(snap *models.DashboardSnapshot) []SummaryCard {
	s := snap.Summary
	return []SummaryCard{
		{Key: "users", Label: "Users", Total: s.Users.Total, Growth: s.Users.Growth,
			Breakdown: map[string]int{"active": s.Users.Active, "blocked": s.Users.Blocked}},
		{Key: "stores", Label: "Stores", Total: s.Stores.Total, Growth: s.Stores.Growth,
			Breakdown: map[string]int{"active": s.Stores.Active, "inactive": s.Stores.Inactive}},
		{Key: "products", Label: "Products", Total: s.Products.Total, Growth: s.Products.Growth,
			Breakdown: map[string]int{"active": s.Products.Active, "inactive": s.Products.Inactive}},
		{Key: "orders", Label: "Orders", Total: s.Orders.Total, Growth: s.Orders.Growth,
			Breakdown: map[string]int{"delivered": s.Orders.Delivered, "pending": s.Orders.Pending}},
		{Key: "revenue", Label: "Revenue", Total: s.Revenue.Total, Growth: s.Revenue.Growth,
			Breakdown: map[string]int{}},
		{Key: "categories", Label: "Categories", Total: s.Categories.Total, Growth: s.Categories.Growth,
			Breakdown: map[string]int{"active": s.Categories.Active, "inactive": s.Categories.Inactive}},
	}
}

// AlertCards classifies the quick stats against fixed thresholds. Pending
// orders are the sum of the two independent pending sub-counts.
func AlertCards(qs *models.QuickStats) []AlertCard {
	pending := qs.PendingOrders + qs.PendingStoreOrders
	return []AlertCard{
		{Key: "lowStock", Label: "Low stock products", Count: qs.LowStockCount,
			Severity: severityFor(qs.LowStockCount, 5, 10)},
		{Key: "pendingOrders", Label: "Pending orders", Count: pending,
			Severity: severityFor(pending, 10, 20)},
		{Key: "blockedUsers", Label: "Blocked users", Count: qs.BlockedUsers,
			Severity: severityFor(qs.BlockedUsers, 3, 10)},
		{Key: "deliveredOrders", Label: "Delivered orders", Count: qs.DeliveredOrders,
			Severity: SeverityLow},
	}
}

func severityFor(count, medium, high int) Severity {
	switch {
	case count > high:
		return SeverityHigh
	case count > medium:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// RecentActivity merges the three most-recent users, two most-recent stores
// and two most-recent products into one feed: entries without a timestamp
// are dropped, the rest sort newest first, truncated to six.
func RecentActivity(snap *models.DashboardSnapshot) []Activity {
	var feed []Activity

	users := append([]models.RecentUser(nil), snap.RecentUsers...)
	sortRecent(users, func(u models.RecentUser) string { return u.CreatedAt })
	for _, u := range take(users, 3) {
		if u.CreatedAt == "" {
			continue
		}
		feed = append(feed, Activity{Kind: "user", Label: u.FullName, CreatedAt: models.ParseTimestamp(u.CreatedAt)})
	}

	stores := append([]models.RecentStore(nil), snap.RecentStores...)
	sortRecent(stores, func(s models.RecentStore) string { return s.CreatedAt })
	for _, s := range take(stores, 2) {
		if s.CreatedAt == "" {
			continue
		}
		feed = append(feed, Activity{Kind: "store", Label: s.StoreName, CreatedAt: models.ParseTimestamp(s.CreatedAt)})
	}

	products := append([]models.RecentProduct(nil), snap.RecentProducts...)
	sortRecent(products, func(p models.RecentProduct) string { return p.CreatedAt })
	for _, p := range take(products, 2) {
		if p.CreatedAt == "" {
			continue
		}
		feed = append(feed, Activity{Kind: "product", Label: p.Name, CreatedAt: models.ParseTimestamp(p.CreatedAt)})
	}

	sort.SliceStable(feed, func(i, j int) bool { return feed[i].CreatedAt.After(feed[j].CreatedAt) })
	return take(feed, 6)
}

func sortRecent[T any](items []T, createdAt func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return models.ParseTimestamp(createdAt(items[i])).After(models.ParseTimestamp(createdAt(items[j])))
	})
}

func take[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
