//go:build !windows

package probe

import "os"

func isPrivileged() bool {
	return os.Geteuid() == 0
}
