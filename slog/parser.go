package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/jobkpi"
)

var (
	_ jobkpi.ListingParser = (*LoggingListingParser)(nil)
	_ jobkpi.DetailParser  = (*LoggingDetailParser)(nil)
)

// LoggingListingParser wraps a ListingParser with debug logging.
type LoggingListingParser struct {
	next   jobkpi.ListingParser
	logger *slog.Logger
}

// NewLoggingListingParser creates a new LoggingListingParser.
func NewLoggingListingParser(next jobkpi.ListingParser, logger *slog.Logger) *LoggingListingParser {
	return &LoggingListingParser{next: next, logger: logger}
}

// ParseListings delegates to the wrapped parser and logs how many
// containers were found and how many listings were kept.
func (p *LoggingListingParser) ParseListings(html string, baseURL string) (page *jobkpi.ListingPage, err error) {
	defer func(begin time.Time) {
		containers, jobs := 0, 0
		if page != nil {
			containers, jobs = page.Containers, len(page.Jobs)
		}
		p.logger.Info("parse listings",
			"containers", containers,
			"jobs", jobs,
			"dropped", containers-jobs,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseListings(html, baseURL)
}

// LoggingDetailParser wraps a DetailParser with debug logging.
type LoggingDetailParser struct {
	next   jobkpi.DetailParser
	logger *slog.Logger
}

// NewLoggingDetailParser creates a new LoggingDetailParser.
func NewLoggingDetailParser(next jobkpi.DetailParser, logger *slog.Logger) *LoggingDetailParser {
	return &LoggingDetailParser{next: next, logger: logger}
}

// ParseDetail delegates to the wrapped parser and logs what was found.
func (p *LoggingDetailParser) ParseDetail(html string) (detail *jobkpi.Detail, err error) {
	defer func(begin time.Time) {
		var content bool
		var tasks, skills int
		if detail != nil {
			content, tasks, skills = detail.HasContent, detail.TaskCount, len(detail.Skills)
		}
		p.logger.Info("parse detail",
			"content", content,
			"tasks", tasks,
			"skills", skills,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseDetail(html)
}
