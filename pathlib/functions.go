package pathlib

import (
	"fmt"
	"os"
	"path/filepath"
)

func Exists(pathname string) bool {
	_, err := os.Stat(pathname)
	return !os.IsNotExist(err)
}

func IsFile(pathname string) bool {
	stat, err := os.Stat(pathname)
	return err == nil && stat.Mode().IsRegular()
}

func IsDir(pathname string) bool {
	stat, err := os.Stat(pathname)
	return err == nil && stat.IsDir()
}

func Size(pathname string) (int64, bool) {
	stat, err := os.Stat(pathname)
	if err != nil {
		return 0, false
	}
	return stat.Size(), true
}

func Abs(path string) (string, error) {
	fullpath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(fullpath), nil
}

func Create(filename string) (*os.File, error) {
	err := EnsureDirectoryExists(filepath.Dir(filename))
	if err != nil {
		return nil, err
	}
	return os.Create(filename)
}

func EnsureDirectoryExists(directory string) error {
	_, err := EnsureDirectory(directory)
	return err
}

func EnsureDirectory(directory string) (string, error) {
	fullpath, err := Abs(directory)
	if err != nil {
		return "", err
	}
	if IsDir(fullpath) {
		return fullpath, nil
	}
	err = os.MkdirAll(fullpath, 0o750)
	if err != nil {
		return "", fmt.Errorf("could not create directory %q, reason: %w", fullpath, err)
	}
	return fullpath, nil
}

func AppendFile(filename string, blob []byte) error {
	sink, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return err
	}
	defer sink.Close()
	_, err = sink.Write(blob)
	return err
}
