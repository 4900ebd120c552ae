package jobkpi

import "context"

// Fetcher retrieves the HTML of a page.
type Fetcher interface {
	// Fetch requests the URL and returns the page HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// Pacer inserts the courtesy pause between two requests to the job board.
type Pacer interface {
	// Pause blocks for the pacing interval or until ctx is done.
	Pause(ctx context.Context)
}

// Exporter writes the final job set to its destination.
// Implementations must not modify the jobs.
type Exporter interface {
	Export(ctx context.Context, jobs []*Job) error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
