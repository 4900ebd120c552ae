package mock

import (
	"context"

	"github.com/fwojciec/jobkpi"
)

// Compile-time interface verification.
var (
	_ jobkpi.Fetcher       = (*Fetcher)(nil)
	_ jobkpi.Pacer         = (*Pacer)(nil)
	_ jobkpi.DomainLimiter = (*DomainLimiter)(nil)
	_ jobkpi.Exporter      = (*Exporter)(nil)
)

// Fetcher is a mock implementation of jobkpi.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// Pacer is a mock implementation of jobkpi.Pacer.
type Pacer struct {
	PauseFn func(ctx context.Context)
}

func (p *Pacer) Pause(ctx context.Context) {
	p.PauseFn(ctx)
}

// DomainLimiter is a mock implementation of jobkpi.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

// Exporter is a mock implementation of jobkpi.Exporter.
type Exporter struct {
	ExportFn func(ctx context.Context, jobs []*jobkpi.Job) error
}

func (e *Exporter) Export(ctx context.Context, jobs []*jobkpi.Job) error {
	return e.ExportFn(ctx, jobs)
}
