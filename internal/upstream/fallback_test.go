package upstream

import (
	"context"
	"net/http"
	"testing"

	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/errs"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/pkg/helpers"
)

func TestWithFallbackReturnsPrimaryValue(t *testing.T) {
	got := WithFallback(helpers.TestCtx(),
		func(ctx context.Context) (string, error) { return "backend", nil },
		func() string { return "mock" },
	)

	if got != "backend" {
		t.Fatalf("expected primary value, got %q", got)
	}
}

func TestWithFallbackSubstitutesOnUnavailability(t *testing.T) {
	got := WithFallback(helpers.TestCtx(),
		func(ctx context.Context) (string, error) {
			return "", errs.NewUpstreamError("503", http.StatusServiceUnavailable, nil)
		},
		func() string { return "mock" },
	)

	if got != "mock" {
		t.Fatalf("expected fallback value, got %q", got)
	}
}

func TestWithFallbackCatchesEveryFailure(t *testing.T) {
	// the read path never propagates, even for non-availability failures
	got := WithFallback(helpers.TestCtx(),
		func(ctx context.Context) (int, error) {
			return 0, errs.NewUpstreamError("400", http.StatusBadRequest, nil)
		},
		func() int { return 42 },
	)

	if got != 42 {
		t.Fatalf("expected fallback value, got %d", got)
	}
}

func TestWithFallbackDoesNotStick(t *testing.T) {
	calls := 0
	primary := func(ctx context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, context.DeadlineExceeded
		}
		return 7, nil
	}
	fallback := func() int { return -1 }

	if got := WithFallback(helpers.TestCtx(), primary, fallback); got != -1 {
		t.Fatalf("first call should fall back, got %d", got)
	}
	if got := WithFallback(helpers.TestCtx(), primary, fallback); got != 7 {
		t.Fatalf("second call should reach the backend again, got %d", got)
	}
}
