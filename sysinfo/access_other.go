//go:build !unix

package sysinfo

import (
	"fmt"
	"os"
)

func checkAccess(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", root)
	}
	return nil
}
