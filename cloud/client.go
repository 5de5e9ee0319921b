package cloud

import (
	"fmt"
	"time"

	"github.com/dashlaunch/dashlaunch/common"
	"github.com/go-resty/resty/v2"
)

const (
	probeTimeout = 5 * time.Second

	// Streamlit's built-in health endpoint; answers "ok" once the
	// server loop is up, before the app script finishes its first run.
	healthPath = `/_stcore/health`
)

func newClient(timeout time.Duration) *resty.Client {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", fmt.Sprintf("dashlaunch/%s", common.Version))
	return client
}

// Reachable tells whether the given endpoint answers anything at all.
// Any HTTP status counts; only transport level failures are failures.
func Reachable(endpoint string) bool {
	_, err := newClient(probeTimeout).R().Head(endpoint)
	if err != nil {
		common.Debug("Endpoint %q not reachable: %v", endpoint, err)
		return false
	}
	return true
}

// DashboardURL is where the launched application should answer.
func DashboardURL(host string, port int) string {
	return fmt.Sprintf("http://%s:%d", host, port)
}

// WaitForDashboard polls the dashboard health endpoint until it answers
// with success or the deadline passes. Used only for reporting; the
// launch result never depends on it.
func WaitForDashboard(host string, port int, deadline time.Duration) bool {
	client := newClient(probeTimeout)
	target := DashboardURL(host, port) + healthPath
	limit := time.Now().Add(deadline)
	for time.Now().Before(limit) {
		response, err := client.R().Get(target)
		if err == nil && response.IsSuccess() {
			common.Debug("Dashboard answered at %q.", target)
			return true
		}
		time.Sleep(500 * time.Millisecond)
	}
	common.Debug("Dashboard did not answer at %q within %v.", target, deadline)
	return false
}
