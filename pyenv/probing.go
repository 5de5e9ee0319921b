package pyenv

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/pathlib"
	"github.com/dashlaunch/dashlaunch/shell"
)

// Tool is one resolved piece of the Python toolchain: how to invoke it
// and what it reported from its version query.
type Tool struct {
	Name    string
	Command []string
	Version string
}

func (it *Tool) Available() bool {
	return it != nil && len(it.Command) > 0
}

// CLI gives the full argv for running this tool with extra arguments.
func (it *Tool) CLI(arguments ...string) []string {
	result := make([]string, 0, len(it.Command)+len(arguments))
	result = append(result, it.Command...)
	result = append(result, arguments...)
	return result
}

// versionQuery runs "<command> --version" and captures the first line.
// A tool that cannot answer its version query is treated as absent,
// which also catches Windows store aliases that exist on PATH but only
// print an installation hint.
func versionQuery(command ...string) (string, bool) {
	buffer := bytes.Buffer{}
	task := append(command, "--version")
	code, err := shell.New(nil, ".", task...).Observed(&buffer, false)
	if err != nil || code != 0 {
		common.Trace("Version query %q failed [%d]: %v", command, code, err)
		return "", false
	}
	first, _, _ := strings.Cut(strings.TrimSpace(buffer.String()), "\n")
	return strings.TrimSpace(first), code == 0
}

func resolve(searchPath pathlib.PathParts, candidates ...string) (string, bool) {
	for _, candidate := range candidates {
		found, ok := searchPath.Which(candidate, FileExtensions)
		if !ok {
			continue
		}
		fullpath, err := filepath.EvalSymlinks(found)
		if err != nil {
			common.Trace("Could not resolve symlinks of %q: %v", found, err)
			continue
		}
		return fullpath, true
	}
	return "", false
}

// FindPython probes PATH for a working Python interpreter.
func FindPython(searchPath pathlib.PathParts) (*Tool, bool) {
	common.Timeline("python probe started")
	defer common.Timeline("python probe done")
	executable, ok := resolve(searchPath, pythonCandidates...)
	if !ok {
		return nil, false
	}
	version, ok := versionQuery(executable)
	if !ok {
		return nil, false
	}
	common.Debug("Found python %q (%s).", executable, version)
	return &Tool{Name: "python", Command: []string{executable}, Version: version}, true
}

// FindPip probes for pip, first as a standalone executable and then as
// "python -m pip" through the given interpreter.
func FindPip(searchPath pathlib.PathParts, python *Tool) (*Tool, bool) {
	common.Timeline("pip probe started")
	defer common.Timeline("pip probe done")
	executable, ok := resolve(searchPath, pipCandidates...)
	if ok {
		version, valid := versionQuery(executable)
		if valid {
			common.Debug("Found pip %q (%s).", executable, version)
			return &Tool{Name: "pip", Command: []string{executable}, Version: version}, true
		}
	}
	if python.Available() {
		command := python.CLI("-m", "pip")
		version, valid := versionQuery(command...)
		if valid {
			common.Debug("Found pip as %q (%s).", command, version)
			return &Tool{Name: "pip", Command: command, Version: version}, true
		}
	}
	return nil, false
}

// FindStreamlit probes for the Streamlit runner, first from PATH and
// then as "python -m streamlit".
func FindStreamlit(searchPath pathlib.PathParts, python *Tool) (*Tool, bool) {
	common.Timeline("streamlit probe started")
	defer common.Timeline("streamlit probe done")
	executable, ok := resolve(searchPath, streamlitCandidates...)
	if ok {
		version, valid := versionQuery(executable)
		if valid {
			common.Debug("Found streamlit %q (%s).", executable, version)
			return &Tool{Name: "streamlit", Command: []string{executable}, Version: version}, true
		}
	}
	if python.Available() {
		command := python.CLI("-m", "streamlit")
		version, valid := versionQuery(command...)
		if valid {
			common.Debug("Found streamlit as %q (%s).", command, version)
			return &Tool{Name: "streamlit", Command: command, Version: version}, true
		}
	}
	return nil, false
}
