package probe

import (
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
)

func TestProbeAlivePort(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	u, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		t.Fatalf("server port: %v", err)
	}

	prober, err := New(&Options{Timeout: 5, Retries: 1, Concurrency: 5})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	results := prober.Probe(u.Hostname(), []int{port})
	result, ok := results[port]
	if !ok {
		t.Fatalf("no result for port %d", port)
	}
	if !result.Alive || result.StatusCode != http.StatusOK {
		t.Fatalf("probe: got=%+v want alive with status 200", result)
	}
	if result.Verdict() != "alive, status 200" {
		t.Fatalf("verdict: got=%q", result.Verdict())
	}
}

func TestProbeDeadPort(t *testing.T) {
	// reserve a port, then free it so nothing is listening
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	l.Close()

	prober, err := New(&Options{Timeout: 2, Retries: 1, Concurrency: 5})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	results := prober.Probe("127.0.0.1", []int{port})
	result := results[port]
	if result.Alive {
		t.Fatalf("probe: got=%+v want dead", result)
	}
	if result.Verdict() != "no response" {
		t.Fatalf("verdict: got=%q", result.Verdict())
	}
}
