package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobkpi"
)

// Detail page limits.
const (
	MaxDescriptionLength = 2000
	MaxSkills            = 15
)

var _ jobkpi.DetailParser = (*DetailParser)(nil)

// DetailParser extracts description, task count and skills from a
// listing's detail page.
type DetailParser struct {
	rules Rules
}

// NewDetailParser creates a DetailParser using the given rules.
func NewDetailParser(rules Rules) *DetailParser {
	return &DetailParser{rules: rules}
}

// ParseDetail parses a detail page.
//
// The description is the visible text of the first content region with
// each whitespace run collapsed to a single space, cut to
// MaxDescriptionLength characters. Whitespace between elements is kept as a
// separator rather than dropped, so "<p>Design</p>\n<p>APIs</p>" reads
// "Design APIs", not "DesignAPIs". Skills come from the first MaxSkills
// skill anchors anywhere on the page, deduplicated.
func (p *DetailParser) ParseDetail(html string) (*jobkpi.Detail, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, jobkpi.Errorf(jobkpi.EINVALID, "failed to parse HTML: %v", err)
	}

	detail := &jobkpi.Detail{}

	if content := p.rules.Content.FindAll(doc.Selection).First(); content.Length() > 0 {
		detail.HasContent = true
		detail.Description = truncate(collapseSpace(content.Text()), MaxDescriptionLength)
		detail.TaskCount = CountTaskItems(content)
	}

	seen := make(map[string]bool)
	p.rules.Skill.FindAll(doc.Selection).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= MaxSkills {
			return false
		}
		skill := text(sel)
		if skill != "" && !seen[skill] {
			seen[skill] = true
			detail.Skills = append(detail.Skills, skill)
		}
		return true
	})

	return detail, nil
}

// CountTaskItems sums the direct li children of every ul and ol in sel,
// sel itself included. Each list is examined on its own, so an item of a
// nested list is counted once, at its own list.
func CountTaskItems(sel *goquery.Selection) int {
	count := 0
	sel.Find("ul, ol").AddSelection(sel.Filter("ul, ol")).Each(func(_ int, list *goquery.Selection) {
		count += list.ChildrenFiltered("li").Length()
	})
	return count
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
