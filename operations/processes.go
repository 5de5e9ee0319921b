package operations

import (
	"os"

	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/pretty"
	ps "github.com/mitchellh/go-ps"
)

type ProcessMap map[int]string

// Snapshot captures the current children of this launcher process, so
// that leftovers can be reported after the dashboard run.
func Snapshot() (ProcessMap, error) {
	processes, err := ps.Processes()
	if err != nil {
		return nil, err
	}
	ours := map[int]bool{os.Getpid(): true}
	result := make(ProcessMap)
	// Children may be indirect (runner -> python -> helpers); a few
	// passes over the flat list settles the transitive closure.
	for round := 0; round < 3; round++ {
		for _, process := range processes {
			if ours[process.PPid()] && !ours[process.Pid()] {
				ours[process.Pid()] = true
				result[process.Pid()] = process.Executable()
			}
		}
	}
	return result, nil
}

// SubprocessWarning reports child processes that were born during the
// run and are still alive after the runner exited. Purely informative;
// nothing gets killed.
func SubprocessWarning(before, after ProcessMap, beforeErr, afterErr error) {
	if beforeErr != nil || afterErr != nil {
		common.Uncritical("processes", beforeErr)
		common.Uncritical("processes", afterErr)
		return
	}
	leftovers := false
	for pid, executable := range after {
		if _, known := before[pid]; known {
			continue
		}
		leftovers = true
		pretty.Warning("Subprocess %q (pid %d) is still running after the application exited.", executable, pid)
	}
	if leftovers {
		pretty.Note("Leftover subprocesses may keep ports reserved; close them before relaunching.")
	}
}
