package models

import "strings"

// DataSourceMode is the backend answering mock and project-storage requests.
type DataSourceMode string

const (
	DataSourceLocal  DataSourceMode = "local"
	DataSourceRemote DataSourceMode = "remote"

	// legacyDataSourceRemote is what older builds persisted for remote.
	legacyDataSourceRemote = "http"
)

// ParseDataSourceMode maps a persisted value onto a mode. Anything unknown
// falls back to local.
func ParseDataSourceMode(v string) DataSourceMode {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case string(DataSourceRemote), legacyDataSourceRemote:
		return DataSourceRemote
	default:
		return DataSourceLocal
	}
}

func (m DataSourceMode) IsRemote() bool {
	return m == DataSourceRemote
}

// RemoteServerConfig is read from the eoapi-common.remoteServer module settings.
type RemoteServerConfig struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}
