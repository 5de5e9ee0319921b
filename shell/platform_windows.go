//go:build windows

package shell

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// Non-interactive children get their own process group so that console
// Ctrl-C events aimed at the launcher do not tear them down mid-install.
func platformAttributes(interactive bool) *syscall.SysProcAttr {
	if interactive {
		return nil
	}
	return &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP,
	}
}
