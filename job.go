package jobkpi

import "strings"

// NotCaptured is the placeholder written for text fields that could not be
// extracted. It only appears at the export boundary; inside the program an
// empty string means "not captured".
const NotCaptured = "N/C"

// Job represents one listing discovered on a search-results page.
//
// A Job is created by a ListingParser, enriched in place from its detail
// page and finally annotated with the KPI ratio before export.
type Job struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	SalaryText   string   `json:"salaryText"`
	SalaryValue  *float64 `json:"salaryValue"`
	ContractType string   `json:"contractType"`
	PublishDate  string   `json:"publishDate"`
	Description  string   `json:"description"`
	Skills       string   `json:"skills"`
	Experience   string   `json:"experience"`
	TaskCount    int      `json:"taskCount"`
	KPIRatio     *float64 `json:"kpiRatio"`
	Link         string   `json:"link"`
}

// HasLink reports whether the listing's detail link was captured.
func (j *Job) HasLink() bool {
	return j.Link != ""
}

// ApplyDetail merges the fields extracted from the listing's detail page.
// Fields the detail page did not provide are left as they were.
func (j *Job) ApplyDetail(d *Detail) {
	if d == nil {
		return
	}
	if d.HasContent {
		j.Description = d.Description
		j.TaskCount = d.TaskCount
	}
	if len(d.Skills) > 0 {
		j.Skills = strings.Join(d.Skills, ", ")
	}
}

// Detail holds what a listing's own page contributes to a Job.
type Detail struct {
	// HasContent is true when a content region was found on the page.
	// Description and TaskCount are only meaningful when it is set.
	HasContent  bool
	Description string
	TaskCount   int

	// Skills are deduplicated skill tag labels, in no particular order.
	Skills []string
}

// ListingPage is the result of parsing one search-results page.
type ListingPage struct {
	// Containers is the number of listing containers found on the page,
	// including the ones dropped for lack of a title.
	Containers int

	// Jobs are the listings whose title was captured, in document order.
	Jobs []*Job
}

// ListingParser discovers listing containers on a search-results page and
// extracts the basic fields of each one.
type ListingParser interface {
	// ParseListings parses HTML and returns the listings found on it.
	// The baseURL is used to resolve relative listing links.
	ParseListings(html string, baseURL string) (*ListingPage, error)
}

// DetailParser extracts description, task count and skills from a
// listing's detail page.
type DetailParser interface {
	ParseDetail(html string) (*Detail, error)
}
