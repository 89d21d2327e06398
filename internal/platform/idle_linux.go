package platform

import (
	"fmt"
	"os/exec"
	"time"
)

type idleProvider struct {
	xprintidlePath string
	gdbusPath      string
}

func newIdleProvider() IdleProvider {
	provider := &idleProvider{}
	if path, err := exec.LookPath("xprintidle"); err == nil {
		provider.xprintidlePath = path
	}
	if path, err := exec.LookPath("gdbus"); err == nil {
		provider.gdbusPath = path
	}
	return provider
}

func (provider *idleProvider) IdleDuration() (time.Duration, error) {
	if provider.xprintidlePath != "" {
		output, err := exec.Command(provider.xprintidlePath).Output()
		if err == nil {
			return parseMillis(string(output))
		}
		if provider.gdbusPath == "" {
			return 0, fmt.Errorf("xprintidle: %w", err)
		}
	}
	if provider.gdbusPath != "" {
		// GNOME on Wayland exposes idle time through Mutter only.
		output, err := exec.Command(provider.gdbusPath, "call", "--session",
			"--dest", "org.gnome.Mutter.IdleMonitor",
			"--object-path", "/org/gnome/Mutter/IdleMonitor/Core",
			"--method", "org.gnome.Mutter.IdleMonitor.GetIdletime",
		).Output()
		if err != nil {
			return 0, fmt.Errorf("gdbus idle monitor: %w", err)
		}
		return parseMutterIdle(string(output))
	}
	return 0, ErrIdleUnsupported
}
