//go:build darwin

package platform

import (
	"os"
	"path/filepath"
)

func launchAgentPath(appName string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "Library", "LaunchAgents", launchAgentLabel(appName)+".plist"), nil
}

func enableAutostart(appName string, command []string) error {
	path, err := launchAgentPath(appName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(buildLaunchAgentPlist(launchAgentLabel(appName), command)), 0o644)
}

func disableAutostart(appName string) error {
	path, err := launchAgentPath(appName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
