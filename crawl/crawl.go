// Package crawl sequences a job board extraction run: search-results pages
// are scraped in order, every listing is enriched from its detail page, the
// KPI ratio is computed and the result is exported.
//
// Everything runs on the calling goroutine, one request at a time.
package crawl

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/jobkpi"
)

// Scraper orchestrates an extraction run.
type Scraper struct {
	Fetcher     jobkpi.Fetcher
	Listings    jobkpi.ListingParser
	Details     jobkpi.DetailParser
	Exporter    jobkpi.Exporter
	ListPacer   jobkpi.Pacer
	DetailPacer jobkpi.Pacer
}

// Result holds the outcome of a run.
type Result struct {
	Jobs    []*jobkpi.Job
	Summary jobkpi.Summary
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type ProgressType

	// Page is the search-results page number, for page and listing events.
	Page int

	// URL is the page fetched, for page and detail events.
	URL string

	// Job is the listing concerned, for listing and detail events.
	Job *jobkpi.Job

	// Containers is the number of listing containers found on a page.
	Containers int

	// Completed and Total count detail fetches.
	Completed int
	Total     int

	Error error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressListing ProgressType = iota
	ProgressPage
	ProgressPageFailed
	ProgressDetail
	ProgressDetailFailed
	ProgressExported
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Run scrapes, enriches, computes KPIs and exports.
//
// Fetch and parse failures never fail the run: the page or detail concerned
// is skipped and reported through progress. Only an invalid config, a
// canceled context or an export failure return an error.
func (s *Scraper) Run(ctx context.Context, cfg jobkpi.Config, progress ProgressFunc) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	jobs, err := s.ScrapeList(ctx, cfg.BaseURL, cfg.SearchURL, cfg.MaxPages, progress)
	if err != nil {
		return nil, err
	}

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !job.HasLink() {
			continue
		}
		err := s.Enrich(ctx, job)
		event := ProgressEvent{
			Type:      ProgressDetail,
			URL:       job.Link,
			Job:       job,
			Completed: i + 1,
			Total:     len(jobs),
			Error:     err,
		}
		if err != nil {
			event.Type = ProgressDetailFailed
		}
		progress(event)
		s.pause(ctx, s.DetailPacer)
	}

	jobkpi.ComputeKPI(jobs)

	if err := s.Exporter.Export(ctx, jobs); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	result := &Result{Jobs: jobs, Summary: jobkpi.Summarize(jobs)}
	progress(ProgressEvent{Type: ProgressExported, Total: len(jobs)})
	return result, nil
}

// ScrapeList fetches search-results pages 1 through maxPages in order and
// returns the listings found, in page then position order.
// A page that cannot be fetched or parsed is reported and skipped.
func (s *Scraper) ScrapeList(ctx context.Context, baseURL, searchURL string, maxPages int, progress ProgressFunc) ([]*jobkpi.Job, error) {
	var jobs []*jobkpi.Job
	for page := 1; page <= maxPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pageURL := PageURL(searchURL, page)
		listing, err := s.scrapePage(ctx, pageURL, baseURL)
		s.pause(ctx, s.ListPacer)
		if err != nil {
			progress(ProgressEvent{Type: ProgressPageFailed, Page: page, URL: pageURL, Error: err})
			continue
		}

		for _, job := range listing.Jobs {
			jobs = append(jobs, job)
			progress(ProgressEvent{Type: ProgressListing, Page: page, URL: pageURL, Job: job})
		}
		progress(ProgressEvent{Type: ProgressPage, Page: page, URL: pageURL, Containers: listing.Containers})
	}
	return jobs, nil
}

func (s *Scraper) scrapePage(ctx context.Context, pageURL, baseURL string) (*jobkpi.ListingPage, error) {
	html, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	listing, err := s.Listings.ParseListings(html, baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return listing, nil
}

// Enrich fetches the job's detail page once and merges its description,
// task count and skills into the job. On any failure the job is left
// unchanged and the error is returned for reporting only.
// Jobs without a link are left as they are.
func (s *Scraper) Enrich(ctx context.Context, job *jobkpi.Job) error {
	if !job.HasLink() {
		return nil
	}

	html, err := s.Fetcher.Fetch(ctx, job.Link)
	if err != nil {
		return fmt.Errorf("fetch detail: %w", err)
	}
	detail, err := s.Details.ParseDetail(html)
	if err != nil {
		return fmt.Errorf("parse detail: %w", err)
	}

	job.ApplyDetail(detail)
	return nil
}

func (s *Scraper) pause(ctx context.Context, p jobkpi.Pacer) {
	if p != nil {
		p.Pause(ctx)
	}
}

// PageURL returns the URL of a search-results page. Page 1 is the search URL
// itself; later pages add a page query parameter.
func PageURL(searchURL string, page int) string {
	if page <= 1 {
		return searchURL
	}
	sep := "&"
	if !strings.Contains(searchURL, "?") {
		sep = "?"
	}
	return searchURL + sep + "page=" + strconv.Itoa(page)
}
