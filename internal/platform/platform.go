package platform

import (
	"runtime"
)

// DefaultEditor is the editor used when neither VISUAL nor EDITOR is set.
func DefaultEditor() string {
	if IsWindows() {
		return "notepad"
	}
	return "vi"
}

// IsWindows reports whether the current OS is Windows.
func IsWindows() bool {
	return runtime.GOOS == "windows"
}
