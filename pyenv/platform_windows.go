//go:build windows

package pyenv

var (
	// FileExtensions used when resolving executables from PATH. Order
	// matters: PATHEXT style resolution prefers .exe over extensionless.
	FileExtensions = []string{".exe", ".cmd", ".bat", ""}

	pythonCandidates    = []string{"python", "py", "python3"}
	pipCandidates       = []string{"pip", "pip3"}
	streamlitCandidates = []string{"streamlit"}
)

func IsWindows() bool {
	return true
}
