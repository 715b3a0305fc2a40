package models

const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
	PlatformBoth    = "both"
)

func ValidPlatform(p string) bool {
	return p == PlatformAndroid || p == PlatformIOS || p == PlatformBoth
}

type AppVersion struct {
	ID            string `json:"_id"`
	VersionCode   int    `json:"versionCode"`
	VersionName   string `json:"versionName"`
	Platform      string `json:"platform"`
	DownloadURL   string `json:"downloadUrl,omitempty"`
	ReleaseNotes  string `json:"releaseNotes,omitempty"`
	IsForceUpdate bool   `json:"isForceUpdate"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}
