package common

// Exit code contract (see README): zero means the launch pipeline ran
// to completion and the child exited cleanly; one means a precondition
// failed (missing python, missing pip, install failure, missing app
// file); ten means the child itself exited with failure.
const (
	ExitSuccess      = 0
	ExitPrecondition = 1
	ExitChildFailure = 10
)

type ExitCode struct {
	Code    int
	Message string
}

func (it ExitCode) ShowMessage() {
	if len(it.Message) > 0 {
		Log("%s", it.Message)
	}
}
