package common

import (
	"os"
	"path/filepath"
	"time"
)

func ExpandPath(entry string) string {
	intermediate := os.ExpandEnv(entry)
	result, err := filepath.Abs(intermediate)
	if err != nil {
		return intermediate
	}
	return result
}

func PlatformSyncDelay() {
	time.Sleep(3 * time.Millisecond)
}
