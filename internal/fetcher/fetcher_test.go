package fetcher

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func serverMock() *httptest.Server {
	handler := http.NewServeMux()
	handler.HandleFunc("/foo/bar", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>hello</body></html>`))
	})
	handler.HandleFunc("/not-found", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	return httptest.NewServer(handler)
}

func TestFetcherFetchSuccess(t *testing.T) {
	server := serverMock()
	defer server.Close()

	f := New("test-agent")
	target := fmt.Sprintf("%s/foo/bar", server.URL)
	body, _, err := f.Fetch(target)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !strings.Contains(string(body), "hello") {
		t.Errorf("Fetch() body = %q, want it to contain %q", body, "hello")
	}
}

func TestFetcherFetchHTTPError(t *testing.T) {
	server := serverMock()
	defer server.Close()

	f := New("test-agent")
	target := fmt.Sprintf("%s/not-found", server.URL)
	if _, _, err := f.Fetch(target); err == nil {
		t.Error("Fetch() error = nil, want an error for a 404 response")
	}
}

func TestFetcherFetchInvalidURL(t *testing.T) {
	f := New("test-agent")
	if _, _, err := f.Fetch("://not-a-url"); err == nil {
		t.Error("Fetch() error = nil, want an error for a malformed URL")
	}
}
