package pretty

import (
	"bufio"
	"fmt"
	"os"

	"github.com/dashlaunch/dashlaunch/common"
)

func csi(value string) string {
	return fmt.Sprintf("\033[%s", value)
}

func csif(form string, details ...interface{}) string {
	return csi(fmt.Sprintf(form, details...))
}

func Ok() error {
	common.Log("%s%sOK.%s", Sparkles, Green, Reset)
	return nil
}

func Guard(condition bool, code int, form string, details ...interface{}) {
	if !condition {
		Exit(code, form, details...)
	}
}

// Exit panics with an exit code that the main function converts into
// os.Exit after logs have been flushed. Deferred cleanups still run.
func Exit(code int, form string, details ...interface{}) {
	message := fmt.Sprintf(form, details...)
	panic(common.ExitCode{Code: code, Message: message})
}

func Warning(form string, details ...interface{}) {
	common.Log("%s%s%s", Yellow, fmt.Sprintf(form, details...), Reset)
}

func Highlight(form string, details ...interface{}) {
	common.Log("%s%s%s", Cyan, fmt.Sprintf(form, details...), Reset)
}

func Note(form string, details ...interface{}) {
	common.Log("%sNote: %s%s", Grey, fmt.Sprintf(form, details...), Reset)
}

var progressAt int

// Progress prints one numbered step of the launch pipeline. Step zero
// resets the counter for a fresh run.
func Progress(step int, form string, details ...interface{}) {
	if step == 0 {
		progressAt = 0
		return
	}
	progressAt = step
	message := fmt.Sprintf(form, details...)
	common.Log("%s####  Progress: %02d/%d  %s  %s%s", Blue, step, ProgressMark, common.Version, message, Reset)
	common.Timeline("%d/%d %s", step, ProgressMark, message)
}

// ProgressMark is the total step count shown in progress lines.
const ProgressMark = 5

// HoldOpen waits for a keypress on interactive terminals, so that
// double-click launches do not close their window before the user has
// seen the diagnostics. Non-interactive runs return immediately.
func HoldOpen(form string, details ...interface{}) {
	if !Interactive {
		return
	}
	common.WaitLogs()
	fmt.Fprintf(os.Stderr, "%s%s%s", Faint, fmt.Sprintf(form, details...), Reset)
	reader := bufio.NewReader(os.Stdin)
	_, _ = reader.ReadString('\n')
}
