//go:build windows

package pin

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"
)

// Apply sets or clears HWND_TOPMOST on the window's native handle.
func Apply(w fyne.Window, on bool) {
	native, ok := w.(driver.NativeWindow)
	if !ok {
		return
	}
	native.RunNative(func(ctx any) {
		wc, ok := ctx.(driver.WindowsWindowContext)
		if !ok {
			return
		}
		insertAfter := windows.HWND_NOTOPMOST
		if on {
			insertAfter = windows.HWND_TOPMOST
		}
		_ = windows.SetWindowPos(windows.HWND(wc.HWND), insertAfter,
			0, 0, 0, 0, windows.SWP_NOMOVE|windows.SWP_NOSIZE)
	})
}
