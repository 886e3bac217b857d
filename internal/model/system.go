package model

// VersionInfo contains version and migration information for the application.
type VersionInfo struct {
	AppVersion string `json:"app_version"`
	DbVersion  string `json:"db_version"`
}
