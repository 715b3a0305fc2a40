package listview

import (
	"context"

	"github.com/example/martadmin/pkg/api"
	"github.com/example/martadmin/pkg/models"
	"github.com/example/martadmin/pkg/validate"
	"go.uber.org/zap"
)

type AppVersions struct {
	*Controller[models.AppVersion]
	client *api.Client
}

func NewAppVersions(client *api.Client, logger *zap.Logger, notify Notifier, auditor Auditor) *AppVersions {
	desc := Descriptor[models.AppVersion]{
		Resource: "app-versions",
		Label:    "App version",
		Fetch: func(ctx context.Context) ([]models.AppVersion, error) {
			return client.ListAppVersions(ctx, "")
		},
		SearchFields: func(v models.AppVersion) []string {
			return []string{v.VersionName, v.ReleaseNotes}
		},
		SortKey: func(v models.AppVersion) int64 {
			return models.ParseTimestamp(v.CreatedAt).UnixMilli()
		},
		Filters: map[string]func(models.AppVersion) string{
			"platform": func(v models.AppVersion) string { return v.Platform },
		},
		Stats: appVersionStats,
	}
	return &AppVersions{
		Controller: New(desc, logger, notify, auditor),
		client:     client,
	}
}

func appVersionStats(items []models.AppVersion) Stats {
	stats := Stats{"total": float64(len(items))}
	for _, v := range items {
		stats[v.Platform]++
		if v.IsForceUpdate {
			stats["forceUpdate"]++
		}
	}
	return stats
}

// Latest returns the highest released version the backend knows about.
func (a *AppVersions) Latest(ctx context.Context) (*models.AppVersion, error) {
	return a.client.LatestAppVersion(ctx)
}

// LatestSaved returns the most recently saved record.
func (a *AppVersions) LatestSaved(ctx context.Context) (*models.AppVersion, error) {
	return a.client.LatestSavedAppVersion(ctx)
}

func (a *AppVersions) Create(ctx context.Context, f api.AppVersionForm) error {
	if err := validate.AppVersion(f, true); err != nil {
		return err
	}
	return a.Mutate(ctx, ActionCreate, func(ctx context.Context) (string, error) {
		created, err := a.client.CreateAppVersion(ctx, f)
		if err != nil {
			return "", err
		}
		return created.ID, nil
	})
}

func (a *AppVersions) Update(ctx context.Context, id string, f api.AppVersionForm) error {
	if err := validate.AppVersion(f, false); err != nil {
		return err
	}
	return a.Mutate(ctx, ActionUpdate, func(ctx context.Context) (string, error) {
		return id, a.client.UpdateAppVersion(ctx, id, f)
	})
}

func (a *AppVersions) Delete(ctx context.Context, id string) error {
	return a.Mutate(ctx, ActionDelete, func(ctx context.Context) (string, error) {
		return id, a.client.DeleteAppVersion(ctx, id)
	})
}
