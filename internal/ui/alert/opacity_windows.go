//go:build windows

package alert

import (
	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"
)

var (
	user32            = windows.NewLazySystemDLL("user32.dll")
	getWindowLongPtr  = user32.NewProc("GetWindowLongPtrW")
	setWindowLongPtr  = user32.NewProc("SetWindowLongPtrW")
	setLayeredAttribs = user32.NewProc("SetLayeredWindowAttributes")
)

const (
	extendedStyleIndex = ^uintptr(19) // GWL_EXSTYLE (-20)
	layeredStyle       = 0x00080000   // WS_EX_LAYERED
	alphaFlag          = 0x2          // LWA_ALPHA
)

func (alert *Window) applyNativeOpacity(alpha uint8) {
	native, ok := alert.window.(driver.NativeWindow)
	if !ok {
		return
	}
	native.RunNative(func(context any) {
		if hwnd := windowHandle(context); hwnd != 0 {
			setAlpha(hwnd, alpha)
		}
	})
}

func windowHandle(context any) uintptr {
	switch value := context.(type) {
	case driver.WindowsWindowContext:
		return value.HWND
	case *driver.WindowsWindowContext:
		if value != nil {
			return value.HWND
		}
	}
	return 0
}

func setAlpha(hwnd uintptr, alpha uint8) {
	style, _, _ := getWindowLongPtr.Call(hwnd, extendedStyleIndex)
	if style&layeredStyle == 0 {
		_, _, _ = setWindowLongPtr.Call(hwnd, extendedStyleIndex, style|layeredStyle)
	}
	_, _, _ = setLayeredAttribs.Call(hwnd, 0, uintptr(alpha), alphaFlag)
}
