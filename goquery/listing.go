package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobkpi"
)

var _ jobkpi.ListingParser = (*ListingParser)(nil)

// ListingParser extracts basic job fields from search-results pages.
type ListingParser struct {
	rules Rules
}

// NewListingParser creates a ListingParser using the given rules.
func NewListingParser(rules Rules) *ListingParser {
	return &ListingParser{rules: rules}
}

// ParseListings finds every listing container on the page and extracts its
// fields. Containers without a title heading anchor are counted but not
// returned.
func (p *ListingParser) ParseListings(html string, baseURL string) (*jobkpi.ListingPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, jobkpi.Errorf(jobkpi.EINVALID, "failed to parse HTML: %v", err)
	}

	containers := p.rules.Container.FindAll(doc.Selection)
	page := &jobkpi.ListingPage{Containers: containers.Length()}
	containers.Each(func(_ int, sel *goquery.Selection) {
		if job, ok := p.ExtractJob(sel, baseURL); ok {
			page.Jobs = append(page.Jobs, job)
		}
	})
	return page, nil
}

// ExtractJob extracts the fields of one listing container. Each field is
// looked up independently; a field whose markup is missing stays empty.
// It reports false when the container has no title heading with an anchor.
// An anchor whose text is empty still counts as a title.
func (p *ListingParser) ExtractJob(container *goquery.Selection, baseURL string) (*jobkpi.Job, bool) {
	job := &jobkpi.Job{}

	anchor := p.rules.Title.FindAll(container).First().Find("a").First()
	found := anchor.Length() > 0
	if found {
		job.Title = text(anchor)
		href, _ := anchor.Attr("href")
		job.Link = jobkpi.ResolveLink(baseURL, strings.TrimSpace(href))
		// The link stands in for the description until the detail page is read.
		job.Description = job.Link
	}

	if company := p.rules.Company.FindAll(container).First(); company.Length() > 0 {
		job.Company = text(company)
	}

	job.SalaryText = p.extractSalary(container)
	if job.SalaryText != "" {
		job.SalaryValue = jobkpi.NormalizeSalary(job.SalaryText)
	}

	if tag := p.rules.ContractTag.FindAll(container).First(); tag.Length() > 0 {
		job.ContractType = text(tag)
	}

	return job, found
}

// extractSalary follows sidebar → pay label → next sibling span → small text.
// Any missing step yields an empty salary.
func (p *ListingParser) extractSalary(container *goquery.Selection) string {
	sidebar := p.rules.Sidebar.FindAll(container).First()
	if sidebar.Length() == 0 {
		return ""
	}
	label := p.rules.SalaryLabel.FindAll(sidebar).First()
	if label.Length() == 0 {
		return ""
	}
	value := label.NextAllFiltered("span").First()
	if value.Length() == 0 {
		return ""
	}
	salary := p.rules.SalaryText.FindAll(value).First()
	if salary.Length() == 0 {
		return ""
	}
	return text(salary)
}

func text(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}
