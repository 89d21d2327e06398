//go:build linux

package platform

import (
	"os"
	"path/filepath"
)

func autostartPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "autostart", entryName(appName)+".desktop"), nil
}

func enableAutostart(appName string, command []string) error {
	path, err := autostartPath(appName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(buildDesktopEntry(appName, command)), 0o644)
}

func disableAutostart(appName string) error {
	path, err := autostartPath(appName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
