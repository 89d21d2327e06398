package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"studydesk/internal/core/model"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	APIURL           string  `yaml:"api_url"`
	IdlePauseEnabled *bool   `yaml:"idle_pause_enabled"`
	IdlePauseMinutes int     `yaml:"idle_pause_minutes"`
	AlertEnabled     *bool   `yaml:"alert_enabled"`
	AlertOpacity     float64 `yaml:"alert_opacity"`
	AlertFullscreen  bool    `yaml:"alert_fullscreen"`
	LaunchAtLogin    bool    `yaml:"launch_at_login"`
	TickIntervalMs   int     `yaml:"tick_interval_ms,omitempty"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (model.Settings, error) {
	settings := model.DefaultSettings()
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings model.Settings) error {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	idle := settings.IdlePauseEnabled
	alert := settings.AlertEnabled
	fileData := yamlSettings{
		APIURL:           settings.APIURL,
		IdlePauseEnabled: &idle,
		IdlePauseMinutes: int(settings.IdlePauseAfter / time.Minute),
		AlertEnabled:     &alert,
		AlertOpacity:     settings.AlertOpacity,
		AlertFullscreen:  settings.AlertFullscreen,
		LaunchAtLogin:    settings.LaunchAtLogin,
	}
	if settings.TickInterval != time.Second {
		fileData.TickIntervalMs = int(settings.TickInterval / time.Millisecond)
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// UpdatePreferences merges the user-edited fields of edited into the saved
// settings file and returns what was written. Values that only came from
// the environment or flags are never persisted this way.
func UpdatePreferences(appName string, edited model.Settings) (model.Settings, error) {
	stored, err := LoadSettings(appName)
	if err != nil {
		return stored, err
	}
	stored = stored.WithPreferences(edited)
	if err := SaveSettings(appName, stored); err != nil {
		return stored, err
	}
	return stored, nil
}

// ConfigDir returns the directory holding studydesk's files.
func ConfigDir(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, strings.ToLower(appName)), nil
}

func resolveConfigPath(appName, fileName string) (string, error) {
	dir, err := ConfigDir(appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if url := strings.TrimSpace(fileData.APIURL); url != "" {
		settings.APIURL = url
	}
	if fileData.IdlePauseEnabled != nil {
		settings.IdlePauseEnabled = *fileData.IdlePauseEnabled
	}
	if fileData.IdlePauseMinutes > 0 {
		settings.IdlePauseAfter = time.Duration(fileData.IdlePauseMinutes) * time.Minute
	}
	if fileData.AlertEnabled != nil {
		settings.AlertEnabled = *fileData.AlertEnabled
	}
	if model.ValidOpacity(fileData.AlertOpacity) {
		settings.AlertOpacity = fileData.AlertOpacity
	}
	if fileData.TickIntervalMs > 0 {
		settings.TickInterval = time.Duration(fileData.TickIntervalMs) * time.Millisecond
	}

	settings.AlertFullscreen = fileData.AlertFullscreen
	settings.LaunchAtLogin = fileData.LaunchAtLogin
}
