//go:build windows

package probe

import "golang.org/x/sys/windows"

// isPrivileged reports whether the process token is elevated, the
// condition Windows places on creating symbolic links.
func isPrivileged() bool {
	token := windows.GetCurrentProcessToken()
	return token.IsElevated()
}
