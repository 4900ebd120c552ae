package jobkpi

import "net/url"

// DefaultOutput is the export filename used when none is given.
const DefaultOutput = "jobs_with_kpi.csv"

// Config holds the parameters of one extraction run.
type Config struct {
	// BaseURL is the job board origin used to resolve relative listing links.
	BaseURL string

	// SearchURL is the first search-results page, query parameters included.
	SearchURL string

	// MaxPages is the number of search-results pages to crawl.
	MaxPages int

	// Output is the destination of the export.
	Output string
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return Errorf(EINVALID, "base URL required")
	}
	if !isAbsoluteURL(c.BaseURL) {
		return Errorf(EINVALID, "base URL must be absolute: %q", c.BaseURL)
	}
	if c.SearchURL == "" {
		return Errorf(EINVALID, "search URL required")
	}
	if !isAbsoluteURL(c.SearchURL) {
		return Errorf(EINVALID, "search URL must be absolute: %q", c.SearchURL)
	}
	if c.MaxPages < 1 {
		return Errorf(EINVALID, "max pages must be at least 1, got %d", c.MaxPages)
	}
	if c.Output == "" {
		return Errorf(EINVALID, "output required")
	}
	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
