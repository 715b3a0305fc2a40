package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/example/martadmin/pkg/models"
)

func (c *Client) GetDashboard(ctx context.Context) (*models.DashboardSnapshot, error) {
	var out models.DashboardSnapshot
	if err := c.doJSON(ctx, http.MethodGet, "/api/dashboard/admin", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetQuickStats(ctx context.Context) (*models.QuickStats, error) {
	var out models.QuickStats
	if err := c.doJSON(ctx, http.MethodGet, "/api/dashboard/quick-stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetPeriodAnalytics(ctx context.Context, periodType, startDate, endDate string) (*models.PeriodAnalytics, error) {
	query := url.Values{"type": {periodType}}
	if startDate != "" {
		query.Set("startDate", startDate)
	}
	if endDate != "" {
		query.Set("endDate", endDate)
	}
	var out models.PeriodAnalytics
	if err := c.doJSON(ctx, http.MethodGet, "/api/dashboard/analytics/period", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
