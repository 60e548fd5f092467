package errs

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
)

func TestIsUnavailable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("request: %w", context.DeadlineExceeded), true},
		{"net error", &net.DNSError{Err: "no such host", IsNotFound: true}, true},
		{"bad gateway", NewUpstreamError("502", http.StatusBadGateway, nil), true},
		{"service unavailable", NewUpstreamError("503", http.StatusServiceUnavailable, nil), true},
		{"gateway timeout", NewUpstreamError("504", http.StatusGatewayTimeout, nil), true},
		{"transport failure", NewUpstreamError("connection refused", 0, errors.New("dial tcp: connection refused")), true},
		{"not found", NewUpstreamError("404", http.StatusNotFound, nil), false},
		{"bad request", NewUpstreamError("400", http.StatusBadRequest, nil), false},
		{"unrelated", errors.New("decode failed"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsUnavailable(tc.err); got != tc.want {
				t.Fatalf("IsUnavailable(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestIsUnavailableTimeout(t *testing.T) {
	var err error = &timeoutError{}
	if !IsUnavailable(fmt.Errorf("GET /volume: %w", err)) {
		t.Fatal("wrapped timeout should classify as unavailable")
	}
}

type timeoutError struct{}

func (*timeoutError) Error() string   { return "i/o timeout" }
func (*timeoutError) Timeout() bool   { return true }
func (*timeoutError) Temporary() bool { return true }

var _ net.Error = (*timeoutError)(nil)
