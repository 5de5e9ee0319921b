package pathlib

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type PathParts []string

func TargetPath() PathParts {
	return PathFrom(filepath.SplitList(os.Getenv("PATH"))...)
}

func PathFrom(parts ...string) PathParts {
	if parts == nil {
		return PathParts{}
	}
	return PathParts(parts)
}

func (it PathParts) Prepend(parts ...string) PathParts {
	result := make(PathParts, 0, len(it)+len(parts))
	result = append(result, parts...)
	result = append(result, it...)
	return result
}

func (it PathParts) Append(parts ...string) PathParts {
	result := make(PathParts, 0, len(it)+len(parts))
	result = append(result, it...)
	result = append(result, parts...)
	return result
}

func (it PathParts) AsEnvironmental(name string) string {
	return fmt.Sprintf("%s=%s", name, strings.Join(it, string(filepath.ListSeparator)))
}

// Which finds the first matching executable from the path parts, trying
// each of the given filename extensions in order. Extensions contain the
// empty string on POSIX systems and things like ".exe" on Windows.
func (it PathParts) Which(application string, extensions []string) (string, bool) {
	if filepath.IsAbs(application) && IsFile(application) {
		return application, true
	}
	for _, directory := range it {
		for _, extension := range extensions {
			candidate := filepath.Join(directory, application+extension)
			if IsFile(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}
