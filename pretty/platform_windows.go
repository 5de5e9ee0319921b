//go:build windows

package pretty

import (
	"os"

	"github.com/dashlaunch/dashlaunch/common"
	"golang.org/x/sys/windows"
)

// Windows consoles need virtual terminal processing switched on before
// ANSI sequences render; legacy consoles that refuse get plain output.
func localSetup(interactive bool) {
	Iconic = false
	handle := windows.Handle(os.Stdout.Fd())
	var mode uint32
	err := windows.GetConsoleMode(handle, &mode)
	if err != nil {
		common.Trace("Could not read console mode: %v", err)
		Disabled = true
		return
	}
	mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	err = windows.SetConsoleMode(handle, mode)
	if err != nil {
		common.Trace("Could not enable virtual terminal processing: %v", err)
		Disabled = true
	}
}
