package mock

import "github.com/fwojciec/jobkpi"

var (
	_ jobkpi.ListingParser = (*ListingParser)(nil)
	_ jobkpi.DetailParser  = (*DetailParser)(nil)
)

// ListingParser is a mock implementation of jobkpi.ListingParser.
type ListingParser struct {
	ParseListingsFn func(html string, baseURL string) (*jobkpi.ListingPage, error)
}

func (p *ListingParser) ParseListings(html string, baseURL string) (*jobkpi.ListingPage, error) {
	return p.ParseListingsFn(html, baseURL)
}

// DetailParser is a mock implementation of jobkpi.DetailParser.
type DetailParser struct {
	ParseDetailFn func(html string) (*jobkpi.Detail, error)
}

func (p *DetailParser) ParseDetail(html string) (*jobkpi.Detail, error) {
	return p.ParseDetailFn(html)
}
