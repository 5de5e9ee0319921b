package pathlib_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/dashlaunch/dashlaunch/hamlet"
	"github.com/dashlaunch/dashlaunch/pathlib"
)

func TestWhichFindsExecutablesInOrder(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Not a windows test.")
	}
	must_be, wont_be := hamlet.Specifications(t)

	first, second := t.TempDir(), t.TempDir()
	winner := filepath.Join(second, "python3")
	must_be.Nil(os.WriteFile(winner, []byte("#!/bin/sh\n"), 0o755))

	sut := pathlib.PathFrom(first, second)
	found, ok := sut.Which("python3", []string{""})
	must_be.True(ok)
	must_be.Equal(winner, found)

	_, ok = sut.Which("no-such-tool", []string{""})
	wont_be.True(ok)
}

func TestPathPartsManipulation(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut := pathlib.PathFrom("/usr/bin")
	sut = sut.Prepend("/opt/python/bin")
	sut = sut.Append("/usr/local/bin")
	must_be.Equal(3, len(sut))
	must_be.Equal("/opt/python/bin", sut[0])

	environmental := sut.AsEnvironmental("PATH")
	must_be.True(strings.HasPrefix(environmental, "PATH="))
	must_be.True(strings.Contains(environmental, "/usr/local/bin"))
}

func TestTargetPathReflectsEnvironment(t *testing.T) {
	_, wont_be := hamlet.Specifications(t)

	wont_be.Equal(0, len(pathlib.TargetPath()))
}
