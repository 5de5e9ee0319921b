package cloud_test

import (
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dashlaunch/dashlaunch/cloud"
	"github.com/dashlaunch/dashlaunch/hamlet"
)

func hostAndPort(t *testing.T, server *httptest.Server) (string, int) {
	t.Helper()
	host, portText, err := net.SplitHostPort(strings.TrimPrefix(server.URL, "http://"))
	if err != nil {
		t.Fatal(err)
	}
	port, err := strconv.Atoi(portText)
	if err != nil {
		t.Fatal(err)
	}
	return host, port
}

func TestDashboardURLForm(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	must_be.Equal("http://localhost:8501", cloud.DashboardURL("localhost", 8501))
	must_be.Equal("http://127.0.0.1:9000", cloud.DashboardURL("127.0.0.1", 9000))
}

func TestReachabilityProbe(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	server := httptest.NewServer(http.HandlerFunc(func(sink http.ResponseWriter, _ *http.Request) {
		sink.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	must_be.True(cloud.Reachable(server.URL))
	server.Close()
	wont_be.True(cloud.Reachable(server.URL))
}

func TestWaitForDashboardSeesHealthEndpoint(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	server := httptest.NewServer(http.HandlerFunc(func(sink http.ResponseWriter, request *http.Request) {
		if request.URL.Path == "/_stcore/health" {
			sink.Write([]byte("ok"))
			return
		}
		sink.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	host, port := hostAndPort(t, server)
	must_be.True(cloud.WaitForDashboard(host, port, 5*time.Second))
}

func TestWaitForDashboardGivesUp(t *testing.T) {
	_, wont_be := hamlet.Specifications(t)

	server := httptest.NewServer(http.HandlerFunc(func(sink http.ResponseWriter, _ *http.Request) {
		sink.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	host, port := hostAndPort(t, server)
	wont_be.True(cloud.WaitForDashboard(host, port, 100*time.Millisecond))
}
