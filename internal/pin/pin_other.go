//go:build !windows

package pin

import "fyne.io/fyne/v2"

// Apply is a no-op outside Windows.
func Apply(w fyne.Window, on bool) {}
