// Package pin toggles the always-on-top flag of the application window.
// Only the Windows driver exposes a native topmost control; elsewhere the
// toggle is accepted but has no effect.
package pin
