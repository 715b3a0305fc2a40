package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/example/martadmin/pkg/models"
)

type AppVersionForm struct {
	VersionCode   int    `json:"versionCode"`
	VersionName   string `json:"versionName"`
	Platform      string `json:"platform"`
	DownloadURL   string `json:"downloadUrl,omitempty"`
	ReleaseNotes  string `json:"releaseNotes,omitempty"`
	IsForceUpdate bool   `json:"isForceUpdate"`
}

// ListAppVersions returns every recorded app version; platform narrows the
// list server-side when non-empty.
func (c *Client) ListAppVersions(ctx context.Context, platform string) ([]models.AppVersion, error) {
	var query url.Values
	if platform != "" {
		query = url.Values{"platform": {platform}}
	}
	var out []models.AppVersion
	if err := c.doJSON(ctx, http.MethodGet, "/api/app-version/all", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) LatestAppVersion(ctx context.Context) (*models.AppVersion, error) {
	var out models.AppVersion
	if err := c.doJSON(ctx, http.MethodGet, "/api/app-version/latest", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LatestSavedAppVersion returns the most recently saved record regardless of
// version ordering.
func (c *Client) LatestSavedAppVersion(ctx context.Context) (*models.AppVersion, error) {
	var out models.AppVersion
	if err := c.doJSON(ctx, http.MethodGet, "/api/app-version/latest-save", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAppVersion(ctx context.Context, f AppVersionForm) (*models.AppVersion, error) {
	var out models.AppVersion
	if err := c.doJSON(ctx, http.MethodPost, "/api/app-version", nil, f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAppVersion(ctx context.Context, id string, f AppVersionForm) error {
	return c.doJSON(ctx, http.MethodPut, "/api/app-version/"+id, nil, f, nil)
}

func (c *Client) DeleteAppVersion(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/app-version/"+id, nil, nil, nil)
}
