package upstream

import (
	"context"

	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/errs"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/pkg/logger"
)

// WithFallback runs primary and returns its value, substituting fallback's
// value on any failure. Read paths never surface an error to the caller:
// one failed attempt silently swaps in generated data for that call, and
// the next call tries the backend again. The unavailability classification
// only affects how the substitution is logged.
func WithFallback[T any](ctx context.Context, primary func(context.Context) (T, error), fallback func() T) T {
	value, err := primary(ctx)
	if err == nil {
		return value
	}

	log := logger.FromContext(ctx)
	if errs.IsUnavailable(err) {
		log.Warn("backend unavailable, using generated data", "error", err)
	} else {
		log.Warn("backend call failed, using generated data", "error", err)
	}
	return fallback()
}
