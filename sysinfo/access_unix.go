//go:build unix

package sysinfo

import "golang.org/x/sys/unix"

// checkAccess asks the kernel whether the proc root can be listed and
// traversed by the invoking user.
func checkAccess(root string) error {
	return unix.Access(root, unix.R_OK|unix.X_OK)
}
