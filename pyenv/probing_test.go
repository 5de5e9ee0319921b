package pyenv_test

import (
	"runtime"
	"testing"

	"github.com/dashlaunch/dashlaunch/hamlet"
	"github.com/dashlaunch/dashlaunch/pathlib"
	"github.com/dashlaunch/dashlaunch/pyenv"
)

func TestPlatformFlagsAreCorrectlySet(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	if runtime.GOOS == "windows" {
		must_be.True(pyenv.IsWindows())
	} else {
		wont_be.True(pyenv.IsWindows())
		must_be.Equal([]string{""}, pyenv.FileExtensions)
	}
}

func TestToolCommandBuilding(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	var missing *pyenv.Tool
	wont_be.True(missing.Available())

	python := &pyenv.Tool{Name: "python", Command: []string{"/usr/bin/python3"}, Version: "Python 3.11.4"}
	must_be.True(python.Available())
	must_be.Equal([]string{"/usr/bin/python3", "-m", "pip", "--version"}, python.CLI("-m", "pip", "--version"))

	modular := &pyenv.Tool{Name: "pip", Command: []string{"/usr/bin/python3", "-m", "pip"}}
	must_be.Equal([]string{"/usr/bin/python3", "-m", "pip", "install", "streamlit"}, modular.CLI("install", "streamlit"))
}

func TestProbingEmptyPathFindsNothing(t *testing.T) {
	_, wont_be := hamlet.Specifications(t)

	empty := pathlib.PathFrom(t.TempDir())
	_, ok := pyenv.FindPython(empty)
	wont_be.True(ok)
	_, ok = pyenv.FindPip(empty, nil)
	wont_be.True(ok)
	_, ok = pyenv.FindStreamlit(empty, nil)
	wont_be.True(ok)
}
