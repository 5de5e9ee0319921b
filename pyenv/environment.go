package pyenv

import (
	"fmt"
	"os"

	"github.com/dashlaunch/dashlaunch/settings"
)

// LaunchEnvironment is the child process environment: the parent's,
// unbuffered Python output, proxy settings when configured, and any
// extra K=V entries appended last so they win.
func LaunchEnvironment(extra ...string) []string {
	env := os.Environ()
	env = append(env, "PYTHONUNBUFFERED=1")
	env = injectNetworkEnvironment(env)
	env = append(env, extra...)
	return env
}

func injectNetworkEnvironment(env []string) []string {
	if proxy := settings.Global.HttpProxy(); len(proxy) > 0 {
		env = append(env, fmt.Sprintf("HTTP_PROXY=%s", proxy))
	}
	if proxy := settings.Global.HttpsProxy(); len(proxy) > 0 {
		env = append(env, fmt.Sprintf("HTTPS_PROXY=%s", proxy))
	}
	if noproxy := settings.Global.NoProxy(); len(noproxy) > 0 {
		env = append(env, fmt.Sprintf("NO_PROXY=%s", noproxy))
	}
	return env
}
