//go:build !windows

package alert

// Other platforms rely on the translucent background rectangle.
func (alert *Window) applyNativeOpacity(uint8) {}
