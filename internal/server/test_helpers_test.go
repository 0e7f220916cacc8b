package server

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"playroom/internal/config"
)

func newTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("skipping test; listen unavailable: %v", err)
	}
	ts := &httptest.Server{
		Listener: listener,
		Config:   &http.Server{Handler: handler},
	}
	ts.Start()
	return ts
}

// fastConfig shortens every delay so timer-driven transitions fire quickly.
func fastConfig() config.Config {
	cfg := config.Default()
	cfg.RevealDelayMS = 20
	cfg.ShapeRevealDelayMS = 20
	cfg.RetryDelayMS = 20
	cfg.StarsRevealDelayMS = 20
	return cfg
}

func startTestServer(t *testing.T, cfg config.Config) (*Server, *httptest.Server) {
	t.Helper()
	srv := New(nil, cfg)
	ts := newTestServer(t, srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met within %s", timeout)
}
