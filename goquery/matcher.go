// Package goquery provides HTML extraction of job listings and detail pages
// using PuerkitoBio/goquery.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// NodeMatcher finds the nodes of a fragment that play one role in a listing.
// Implementations return matches in document order.
type NodeMatcher interface {
	FindAll(sel *goquery.Selection) *goquery.Selection
}

// ClassMatcher matches elements by tag name and class pattern.
// The pattern is tried against every single class and against the whole
// class attribute, so it can express both "has class X" and "classes appear
// in this order".
type ClassMatcher struct {
	// Tags restricts the match to these element names. Empty means any element.
	Tags    []string
	Pattern *regexp.Regexp
}

// FindAll returns the descendants of sel matching the tags and class pattern.
func (m ClassMatcher) FindAll(sel *goquery.Selection) *goquery.Selection {
	return sel.Find(tagSelector(m.Tags)).FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, ok := s.Attr("class")
		if !ok {
			return false
		}
		if m.Pattern.MatchString(class) {
			return true
		}
		for _, c := range strings.Fields(class) {
			if m.Pattern.MatchString(c) {
				return true
			}
		}
		return false
	})
}

// TextMatcher matches elements whose own string matches a pattern.
// An element's own string is its text when it has a single text child,
// or the own string of its single element child; otherwise it has none.
type TextMatcher struct {
	Tags    []string
	Pattern *regexp.Regexp
}

// FindAll returns the descendants of sel whose own string matches.
func (m TextMatcher) FindAll(sel *goquery.Selection) *goquery.Selection {
	return sel.Find(tagSelector(m.Tags)).FilterFunction(func(_ int, s *goquery.Selection) bool {
		text, ok := ownString(s.Get(0))
		return ok && m.Pattern.MatchString(text)
	})
}

// HrefMatcher matches anchors whose href matches a pattern.
type HrefMatcher struct {
	Pattern *regexp.Regexp
}

// FindAll returns the anchors below sel whose href matches.
func (m HrefMatcher) FindAll(sel *goquery.Selection) *goquery.Selection {
	return sel.Find("a[href]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		return m.Pattern.MatchString(href)
	})
}

func tagSelector(tags []string) string {
	if len(tags) == 0 {
		return "*"
	}
	return strings.Join(tags, ", ")
}

func ownString(n *html.Node) (string, bool) {
	if n == nil || n.FirstChild == nil || n.FirstChild != n.LastChild {
		return "", false
	}
	child := n.FirstChild
	switch child.Type {
	case html.TextNode:
		return child.Data, true
	case html.ElementNode:
		return ownString(child)
	}
	return "", false
}

// Rules holds the markup patterns that identify each part of a listing.
// Swapping rules adapts extraction to markup changes without touching the
// pipeline.
type Rules struct {
	// Container finds the listing containers of a search-results page.
	Container NodeMatcher

	// Title finds the primary heading of a listing; its first anchor
	// carries the title text and the detail link.
	Title NodeMatcher

	// Company finds the bold company name.
	Company NodeMatcher

	// Sidebar finds the side panel holding the pay details.
	Sidebar NodeMatcher

	// SalaryLabel finds the "Pay"/"Rate" label inside the sidebar. The
	// salary is read from SalaryText below the label's next sibling span.
	SalaryLabel NodeMatcher
	SalaryText  NodeMatcher

	// ContractTag finds tag badges; the first one is the contract type.
	ContractTag NodeMatcher

	// Content finds the description region of a detail page.
	Content NodeMatcher

	// Skill finds skill tag anchors on a detail page.
	Skill NodeMatcher
}

// DefaultRules returns the rules for free-work.com markup.
func DefaultRules() Rules {
	return Rules{
		Container:   ClassMatcher{Tags: []string{"div"}, Pattern: regexp.MustCompile(`mb-4.*rounded-lg.*bg-white.*shadow`)},
		Title:       ClassMatcher{Tags: []string{"h2", "h3"}, Pattern: regexp.MustCompile(`font-semibold.*text-xl|text-lg`)},
		Company:     ClassMatcher{Tags: []string{"div"}, Pattern: regexp.MustCompile(`^font-bold$`)},
		Sidebar:     ClassMatcher{Tags: []string{"div"}, Pattern: regexp.MustCompile(`lg:w-64.*bg-gray-50`)},
		SalaryLabel: TextMatcher{Tags: []string{"span"}, Pattern: regexp.MustCompile(`(?i)(Pay|Rate)`)},
		SalaryText:  ClassMatcher{Tags: []string{"span"}, Pattern: regexp.MustCompile(`^text-sm$`)},
		ContractTag: ClassMatcher{Tags: []string{"span"}, Pattern: regexp.MustCompile(`tag`)},
		Content:     ClassMatcher{Tags: []string{"div"}, Pattern: regexp.MustCompile(`prose-content|html-renderer|job-description`)},
		Skill:       HrefMatcher{Pattern: regexp.MustCompile(`/skills/`)},
	}
}
