package common

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"
)

const (
	defaultControllerType = `user`
)

var (
	// Version is the build version, overridden at link time.
	Version = `v0.6.1`

	// When is the moment this process started, as unix seconds.
	When = time.Now().Unix()

	// Product tells where this launcher keeps its home directory
	// and what it calls itself in diagnostics.
	Product ProductStrategy = LauncherMode()

	// ControllerType identifies what is driving this process,
	// "user" by default, overridable for automation.
	ControllerType = defaultControllerType

	// LogLinenumbers makes the logger prefix lines with a running number.
	LogLinenumbers bool

	// LogHides drops log lines containing any of these fragments.
	LogHides = []string{}

	// NoOutputCapture skips output teeing into the journal directory.
	NoOutputCapture bool

	debugFlag  bool
	traceFlag  bool
	silentFlag bool
)

func UnifyVerbosityFlags() {
	if silentFlag {
		debugFlag = false
		traceFlag = false
	}
	if traceFlag {
		debugFlag = true
	}
}

func DefineVerbosity(silent, debug, trace bool) {
	silentFlag = silent
	debugFlag = debug
	traceFlag = trace
	UnifyVerbosityFlags()
}

func DebugFlag() bool {
	return debugFlag || traceFlag
}

func TraceFlag() bool {
	return traceFlag
}

func Silent() bool {
	return silentFlag
}

func ControllerIdentity() string {
	return strings.ToLower(fmt.Sprintf("%s.%s", Product.Name(), ControllerType))
}

func Platform() string {
	return strings.ToLower(fmt.Sprintf("%s_%s", runtime.GOOS, runtime.GOARCH))
}

func UserHomeIdentity() string {
	location, err := os.UserHomeDir()
	if err != nil {
		return "badcafe"
	}
	return fmt.Sprintf("%02x", Siphash(sipKeyLeft, sipKeyRight, []byte(location)))
}

// OptimalWorkerCount gives worker pool size for I/O bound probing work.
func OptimalWorkerCount() int {
	limit := runtime.NumCPU() - 1
	if limit < 2 {
		limit = 2
	}
	if limit > 8 {
		limit = 8
	}
	return limit
}
