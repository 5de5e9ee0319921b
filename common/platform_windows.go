//go:build windows

package common

const (
	defaultHomeLocation = "$LOCALAPPDATA/dashlaunch"
)
