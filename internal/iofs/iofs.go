// Package iofs prepares the RateDB file system layout: the config,
// data and log directories plus the generated config.yaml and
// survey.yaml templates.
package iofs

import (
	_ "embed"
	"os"

	"github.com/filmsurvey/ratedb/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed survey.yaml
var SurveyYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.DataDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// Write embedded config.yaml to the config directory
	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// EnsureSurveyFile writes the reference survey template next to the
// config file so users have a working example to edit.
func EnsureSurveyFile(homeDir string) error {
	surveyPath := config.SurveyFilePath(homeDir)

	if _, err := os.Stat(surveyPath); err == nil {
		return nil
	}

	if err := os.WriteFile(surveyPath, []byte(SurveyYAML), 0644); err != nil {
		return CopyFileError(surveyPath, err)
	}

	return nil
}

// ReadFile loads an arbitrary survey file from disk.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return data, nil
}
