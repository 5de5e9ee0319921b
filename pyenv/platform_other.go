//go:build !windows

package pyenv

var (
	// FileExtensions used when resolving executables from PATH.
	FileExtensions = []string{""}

	pythonCandidates    = []string{"python3", "python"}
	pipCandidates       = []string{"pip3", "pip"}
	streamlitCandidates = []string{"streamlit"}
)

func IsWindows() bool {
	return false
}
