//go:build !linux && !darwin && !windows

package platform

func enableAutostart(string, []string) error {
	return ErrAutostartUnsupported
}

func disableAutostart(string) error {
	return ErrAutostartUnsupported
}
