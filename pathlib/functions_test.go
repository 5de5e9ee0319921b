package pathlib_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dashlaunch/dashlaunch/hamlet"
	"github.com/dashlaunch/dashlaunch/pathlib"
)

func TestFilePredicates(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	workarea := t.TempDir()
	filename := filepath.Join(workarea, "artifact.py")

	wont_be.True(pathlib.Exists(filename))
	wont_be.True(pathlib.IsFile(filename))
	must_be.True(pathlib.IsDir(workarea))

	must_be.Nil(os.WriteFile(filename, []byte("print('hello')\n"), 0o644))
	must_be.True(pathlib.Exists(filename))
	must_be.True(pathlib.IsFile(filename))
	wont_be.True(pathlib.IsDir(filename))

	size, ok := pathlib.Size(filename)
	must_be.True(ok)
	must_be.Equal(int64(15), size)
}

func TestEnsureDirectoryCreatesMissingChain(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	workarea := t.TempDir()
	target := filepath.Join(workarea, "deep", "down", "below")
	fullpath, err := pathlib.EnsureDirectory(target)
	must_be.Nil(err)
	must_be.True(pathlib.IsDir(fullpath))
	must_be.Nil(pathlib.EnsureDirectoryExists(target))
}

func TestAppendFileAccumulates(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	filename := filepath.Join(t.TempDir(), "log.jsonl")
	must_be.Nil(pathlib.AppendFile(filename, []byte("one\n")))
	must_be.Nil(pathlib.AppendFile(filename, []byte("two\n")))
	blob, err := os.ReadFile(filename)
	must_be.Nil(err)
	must_be.Equal("one\ntwo\n", string(blob))
}
