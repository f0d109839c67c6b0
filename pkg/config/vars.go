package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "ratedb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/ratedb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the directory path for the embedded database file.
// Returns ~/.local/share/ratedb by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/ratedb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/ratedb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SurveyFilePath returns the full path to the default survey.yaml file.
// Returns ~/.config/ratedb/survey.yaml by default.
func SurveyFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "survey.yaml")
}

// DatabasePath returns the SQLite database file location for the config.
// An explicit Database.Path wins; otherwise the file lives in DataDir.
func (c *Config) DatabasePath() string {
	if c.Database.Path != "" {
		return c.Database.Path
	}
	return filepath.Join(DataDir(c.HomeDir), "ratedb.sqlite")
}
