//go:build !windows

package shell

import "syscall"

func platformAttributes(interactive bool) *syscall.SysProcAttr {
	return nil
}
