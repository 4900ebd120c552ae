package main

import (
	"fmt"
	"io"
	"math"

	"github.com/fwojciec/jobkpi"
	"github.com/fwojciec/jobkpi/crawl"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// titleWidth is how many runes of a title the listing line shows.
const titleWidth = 50

// RunCmd scrapes, enriches, scores and exports job listings.
type RunCmd struct {
	// Output is the export destination reported once the run completes.
	Output string
}

// Run executes the scrape.
func (c *RunCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Scraping listings...")

	result, err := deps.Scraper.Run(deps.Ctx, deps.Config, progressPrinter(deps.Stdout, deps.Stderr, c.Output))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobkpi.ErrorMessage(err))
		return err
	}

	printSummary(deps.Stdout, result.Summary)
	return nil
}

// progressPrinter renders progress events as console lines.
func progressPrinter(stdout, stderr io.Writer, output string) crawl.ProgressFunc {
	detailsStarted := false
	return func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressListing:
			fmt.Fprintf(stdout, "✓ %s | %s\n", truncate(display(e.Job.Title), titleWidth), display(e.Job.SalaryText))
		case crawl.ProgressPage:
			fmt.Fprintf(stdout, "Page %d: %d jobs found\n", e.Page, e.Containers)
		case crawl.ProgressPageFailed:
			fmt.Fprintf(stderr, "page %d: %v\n", e.Page, e.Error)
		case crawl.ProgressDetail, crawl.ProgressDetailFailed:
			if !detailsStarted {
				detailsStarted = true
				fmt.Fprintf(stdout, "\nDetails (%d jobs)...\n", e.Total)
			}
			if e.Error != nil {
				fmt.Fprintf(stderr, "skip %s: %v\n", e.URL, e.Error)
			}
		case crawl.ProgressExported:
			fmt.Fprintf(stdout, "\n%d jobs → %s\n", e.Total, output)
		}
	}
}

func printSummary(w io.Writer, s jobkpi.Summary) {
	if s.WithSalary == 0 {
		return
	}
	fmt.Fprintf(w, "%d jobs with salary\n", s.WithSalary)
	fmt.Fprintf(w, "   Mean salary: %s\n", pounds(s.MeanSalary))
	fmt.Fprintf(w, "   Median salary: %s\n", pounds(s.MedianSalary))
}

var printer = message.NewPrinter(language.BritishEnglish)

// pounds formats v as whole pounds with thousands separators.
func pounds(v float64) string {
	return printer.Sprintf("£%d", int64(math.Round(v)))
}

func display(s string) string {
	if s == "" {
		return jobkpi.NotCaptured
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
