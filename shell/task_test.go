package shell_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dashlaunch/dashlaunch/hamlet"
	"github.com/dashlaunch/dashlaunch/shell"
)

func TestSplitHandlesQuoting(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	parts, err := shell.Split(`python prepare.py --message "hello world"`)
	must_be.Nil(err)
	must_be.Equal([]string{"python", "prepare.py", "--message", "hello world"}, parts)

	parts, err = shell.Split(`echo 'single quoted'`)
	must_be.Nil(err)
	must_be.Equal([]string{"echo", "single quoted"}, parts)

	parts, err = shell.Split("plain")
	must_be.Nil(err)
	must_be.Equal([]string{"plain"}, parts)
}

func TestSplitRejectsUnterminatedQuote(t *testing.T) {
	_, wont_be := hamlet.Specifications(t)

	_, err := shell.Split(`echo "broken`)
	wont_be.Nil(err)
}

func TestObservedCapturesOutputAndExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Not a windows test.")
	}
	must_be, _ := hamlet.Specifications(t)

	buffer := bytes.Buffer{}
	code, err := shell.New(nil, ".", "sh", "-c", "echo hello").Observed(&buffer, false)
	must_be.Nil(err)
	must_be.Equal(0, code)
	must_be.Equal("hello\n", buffer.String())

	code, _ = shell.New(nil, ".", "sh", "-c", "exit 3").Observed(&buffer, false)
	must_be.Equal(3, code)
}

func TestTeeCopiesOutputIntoLogFiles(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Not a windows test.")
	}
	must_be, _ := hamlet.Specifications(t)

	folder := filepath.Join(t.TempDir(), "logs")
	code, err := shell.New(nil, ".", "sh", "-c", "echo captured; echo trouble >&2").Tee(folder, false)
	must_be.Nil(err)
	must_be.Equal(0, code)

	blob, err := os.ReadFile(filepath.Join(folder, "stdout.log"))
	must_be.Nil(err)
	must_be.Equal("captured\n", string(blob))

	blob, err = os.ReadFile(filepath.Join(folder, "stderr.log"))
	must_be.Nil(err)
	must_be.Equal("trouble\n", string(blob))
}

func TestMissingExecutableIsStartFailure(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	buffer := bytes.Buffer{}
	code, err := shell.New(nil, ".", "no-such-binary-here").Observed(&buffer, false)
	wont_be.Nil(err)
	must_be.Equal(-500, code)
}
