package crawl

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/jobkpi"
	"golang.org/x/time/rate"
)

var _ jobkpi.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces requests to each host with a token bucket of burst 1.
// A non-positive rate disables limiting.
type DomainLimiter struct {
	limit rate.Limit

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewDomainLimiter returns a limiter allowing rps requests per second per host.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{limit: limit, hosts: make(map[string]*rate.Limiter)}
}

// Wait blocks until a request to domain is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.host(domain).Wait(ctx)
}

func (d *DomainLimiter) host(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.hosts[domain]
	if !ok {
		l = rate.NewLimiter(d.limit, 1)
		d.hosts[domain] = l
	}
	return l
}

var _ jobkpi.Fetcher = (*LimitedFetcher)(nil)

// LimitedFetcher waits on a DomainLimiter before every fetch.
type LimitedFetcher struct {
	next    jobkpi.Fetcher
	limiter jobkpi.DomainLimiter
}

// NewLimitedFetcher wraps next with per-domain rate limiting.
func NewLimitedFetcher(next jobkpi.Fetcher, limiter jobkpi.DomainLimiter) *LimitedFetcher {
	return &LimitedFetcher{next: next, limiter: limiter}
}

// Fetch waits for the URL's host to be allowed, then fetches it.
func (f *LimitedFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	host := ""
	if u, err := url.Parse(rawURL); err == nil {
		host = u.Host
	}
	if err := f.limiter.Wait(ctx, host); err != nil {
		return "", err
	}
	return f.next.Fetch(ctx, rawURL)
}

// Close closes the wrapped fetcher.
func (f *LimitedFetcher) Close() error {
	return f.next.Close()
}
