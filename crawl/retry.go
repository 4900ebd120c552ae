package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/jobkpi"
)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

var _ jobkpi.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries failed fetches with a fixed backoff schedule.
// With no delays it performs exactly one attempt.
type RetryFetcher struct {
	next   jobkpi.Fetcher
	delays []time.Duration
	logf   LogFunc
}

// NewRetryFetcher wraps next so that a failed fetch is retried once per delay.
// The logger, if provided, is called for each retry attempt.
func NewRetryFetcher(next jobkpi.Fetcher, delays []time.Duration, logf LogFunc) *RetryFetcher {
	return &RetryFetcher{next: next, delays: delays, logf: logf}
}

// Fetch attempts the fetch up to len(delays)+1 times and returns the last error.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		html, err := f.next.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= len(f.delays) {
			return "", lastErr
		}

		if f.logf != nil {
			f.logf("  retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}
}

// Close closes the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}
