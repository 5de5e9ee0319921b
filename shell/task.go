package shell

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/pathlib"
	"github.com/google/shlex"
)

type Task struct {
	environment []string
	directory   string
	executable  string
	args        []string
}

func New(environment []string, directory string, task ...string) *Task {
	executable, args := task[0], task[1:]
	return &Task{
		environment: environment,
		directory:   directory,
		executable:  executable,
		args:        args,
	}
}

// Split breaks a configured hook command into argv parts with shell-like
// quoting rules, without involving an actual shell.
func Split(commandline string) ([]string, error) {
	return shlex.Split(commandline)
}

func (it *Task) stub(interactive bool) *exec.Cmd {
	command := exec.Command(it.executable, it.args...)
	command.Dir = it.directory
	command.Env = it.environment
	command.SysProcAttr = platformAttributes(interactive)
	if interactive {
		command.Stdin = os.Stdin
	}
	return command
}

func (it *Task) run(command *exec.Cmd) (int, error) {
	common.Trace("Running %q with arguments %q", it.executable, it.args)
	err := command.Start()
	if err != nil {
		return -500, fmt.Errorf("failed to start %q, reason: %w", it.executable, err)
	}
	common.Debug("PID #%d is %q.", command.Process.Pid, command)
	defer func() {
		common.Debug("PID #%d finished: %v.", command.Process.Pid, command.ProcessState)
	}()
	err = command.Wait()
	exit, ok := asExitError(err)
	if ok {
		return exit, err
	}
	if err != nil {
		return -502, err
	}
	return command.ProcessState.ExitCode(), nil
}

// Execute runs the task with inherited stdio and blocks until it exits.
func (it *Task) Execute(interactive bool) (int, error) {
	command := it.stub(interactive)
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr
	return it.run(command)
}

// Observed runs the task with both output streams going only into sink.
func (it *Task) Observed(sink io.Writer, interactive bool) (int, error) {
	command := it.stub(interactive)
	command.Stdout = sink
	command.Stderr = sink
	return it.run(command)
}

// Tracked runs the task with output shown to the user and copied to sink.
func (it *Task) Tracked(sink io.Writer, interactive bool) (int, error) {
	command := it.stub(interactive)
	command.Stdout = io.MultiWriter(os.Stdout, sink)
	command.Stderr = io.MultiWriter(os.Stderr, sink)
	return it.run(command)
}

// Tee runs the task with output shown to the user and also written into
// stdout.log and stderr.log under the given folder.
func (it *Task) Tee(folder string, interactive bool) (int, error) {
	err := pathlib.EnsureDirectoryExists(folder)
	if err != nil {
		return -600, err
	}
	outfile, err := pathlib.Create(filepath.Join(folder, "stdout.log"))
	if err != nil {
		return -601, err
	}
	defer outfile.Close()
	errfile, err := pathlib.Create(filepath.Join(folder, "stderr.log"))
	if err != nil {
		return -602, err
	}
	defer errfile.Close()
	command := it.stub(interactive)
	command.Stdout = io.MultiWriter(os.Stdout, outfile)
	command.Stderr = io.MultiWriter(os.Stderr, errfile)
	return it.run(command)
}

func asExitError(err error) (int, bool) {
	if err == nil {
		return 0, false
	}
	exit, ok := err.(*exec.ExitError)
	if !ok {
		return 0, false
	}
	return exit.ExitCode(), true
}
