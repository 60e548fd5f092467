package errs

import (
	"context"
	"errors"
	"net"
	"net/http"
)

// IsUnavailable reports whether err indicates the transaction backend is
// unreachable: a timed-out or failed connection, or a gateway-class status
// (502, 503, 504). Other failures, such as a 4xx or a malformed body, are
// not classified as unavailability.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		switch upstream.Status {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		case 0:
			// transport-level failure with no response
			return true
		}
	}

	return false
}
