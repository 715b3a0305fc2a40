package models

// RevenuePoint is one (date, revenue) sample in a revenue series.
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type RevenueBlock struct {
	WeeklyData []RevenuePoint `json:"weeklyData"`
}

type OrderStatusBreakdown struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Shipped   int `json:"shipped"`
	Delivered int `json:"delivered"`
	Cancelled int `json:"cancelled"`
}

type CategoryPerformance struct {
	Category     CategoryRef `json:"category"`
	ProductCount int         `json:"productCount"`
}

// SummaryEntry is one block of the dashboard summary. The backend omits
// fields that do not apply to a given resource; every field defaults to 0.
type SummaryEntry struct {
	Total     float64 `json:"total"`
	Growth    float64 `json:"growth"`
	Active    int     `json:"active"`
	Inactive  int     `json:"inactive"`
	Blocked   int     `json:"blocked"`
	Delivered int     `json:"delivered"`
	Pending   int     `json:"pending"`
}

type DashboardSummary struct {
	Users      SummaryEntry `json:"users"`
	Stores     SummaryEntry `json:"stores"`
	Products   SummaryEntry `json:"products"`
	Orders     SummaryEntry `json:"orders"`
	Revenue    SummaryEntry `json:"revenue"`
	Categories SummaryEntry `json:"categories"`
}

type RecentUser struct {
	ID        string `json:"_id"`
	FullName  string `json:"fullName"`
	CreatedAt string `json:"createdAt"`
}

type RecentStore struct {
	ID        string `json:"_id"`
	StoreName string `json:"storeName"`
	CreatedAt string `json:"createdAt"`
}

type RecentProduct struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// DashboardSnapshot is the full dashboard payload from GET /api/dashboard/admin.
type DashboardSnapshot struct {
	Revenue             RevenueBlock          `json:"revenue"`
	OrderStatus         OrderStatusBreakdown  `json:"orderStatus"`
	CategoryPerformance []CategoryPerformance `json:"categoryPerformance"`
	Summary             DashboardSummary      `json:"summary"`
	RecentUsers         []RecentUser          `json:"recentUsers"`
	RecentStores        []RecentStore         `json:"recentStores"`
	RecentProducts      []RecentProduct       `json:"recentProducts"`
}

// QuickStats is the payload from GET /api/dashboard/quick-stats.
type QuickStats struct {
	LowStockCount      int `json:"lowStockCount"`
	PendingOrders      int `json:"pendingOrders"`
	PendingStoreOrders int `json:"pendingStoreOrders"`
	BlockedUsers       int `json:"blockedUsers"`
	DeliveredOrders    int `json:"deliveredOrders"`
}

// PeriodAnalytics is the payload from GET /api/dashboard/analytics/period.
type PeriodAnalytics struct {
	Type       string         `json:"type"`
	Series     []RevenuePoint `json:"series"`
	TotalSales float64        `json:"totalSales"`
	OrderCount int            `json:"orderCount"`
}
