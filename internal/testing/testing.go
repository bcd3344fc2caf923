// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

// RequestRecorder counts requests per path and remembers the last request's headers.
//
// Wrap an [http.Handler] with [RequestRecorder.Wrap] to use it with httptest.
type RequestRecorder struct {
	mu      sync.Mutex
	counts  map[string]int
	headers http.Header
}

func NewRequestRecorder() *RequestRecorder {
	return &RequestRecorder{counts: map[string]int{}}
}

func (rr *RequestRecorder) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rr.mu.Lock()
		rr.counts[r.URL.RequestURI()]++
		rr.headers = r.Header.Clone()
		rr.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// Count returns how many times the request URI (path plus query) was requested.
func (rr *RequestRecorder) Count(requestURI string) int {
	rr.mu.Lock()
	defer rr.mu.Unlock()
	return rr.counts[requestURI]
}

// Total returns the number of recorded requests.
func (rr *RequestRecorder) Total() int {
	rr.mu.Lock()
	defer rr.mu.Unlock()
	total := 0
	for _, n := range rr.counts {
		total += n
	}
	return total
}

// Header returns a header of the last recorded request.
func (rr *RequestRecorder) Header(key string) string {
	rr.mu.Lock()
	defer rr.mu.Unlock()
	if rr.headers == nil {
		return ""
	}
	return rr.headers.Get(key)
}

// WriteJSON writes body with a JSON content type and the given status.
func WriteJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
