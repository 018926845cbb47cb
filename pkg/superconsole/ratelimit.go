// ABOUTME: RateLimitedOutput caps the frame rate of another Output with x/time/rate
// ABOUTME: Skipped ticks keep their log lines queued for the next permitted frame

package superconsole

import "golang.org/x/time/rate"

// RateLimitedOutput lets at most fps frames per second through to inner.
type RateLimitedOutput struct {
	inner   Output
	limiter *rate.Limiter
}

// NewRateLimitedOutput wraps inner. A non-positive fps disables limiting.
func NewRateLimitedOutput(inner Output, fps float64) *RateLimitedOutput {
	limit := rate.Inf
	if fps > 0 {
		limit = rate.Limit(fps)
	}
	return &RateLimitedOutput{
		inner:   inner,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// ShouldRender asks inner first so a busy inner output does not consume
// a token.
func (o *RateLimitedOutput) ShouldRender() bool {
	return o.inner.ShouldRender() && o.limiter.Allow()
}

// Output delegates to inner.
func (o *RateLimitedOutput) Output(buf []byte) error {
	return o.inner.Output(buf)
}

// Finalize delegates to inner.
func (o *RateLimitedOutput) Finalize() error {
	return o.inner.Finalize()
}
