package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/jobkpi"
	"github.com/fwojciec/jobkpi/crawl"
)

// DefaultSearchURL is the UK tech and IT search on free-work.com.
const DefaultSearchURL = "https://www.free-work.com/en-gb/tech-it/jobs?locations=gb~~~"

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Config  jobkpi.Config
	Scraper *crawl.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	SearchURL   string        `arg:"" optional:"" default:"${search_url}" help:"Search-results URL (page 1)"`
	BaseURL     string        `default:"https://www.free-work.com" env:"JOBKPI_BASE_URL" help:"Site root used to resolve relative links"`
	Pages       int           `short:"n" default:"1" env:"JOBKPI_PAGES" help:"Number of search-results pages to scrape"`
	Output      string        `short:"o" default:"${output}" env:"JOBKPI_OUTPUT" help:"CSV output path"`
	Timeout     time.Duration `short:"t" default:"15s" env:"JOBKPI_TIMEOUT" help:"Fetch timeout per page"`
	ListPause   time.Duration `default:"2s" env:"JOBKPI_LIST_PAUSE" help:"Pause after each search-results page"`
	DetailPause time.Duration `default:"1s" env:"JOBKPI_DETAIL_PAUSE" help:"Pause after each detail page"`
	Retries     int           `default:"0" env:"JOBKPI_RETRIES" help:"Retries per failed fetch"`
	RPS         float64       `name:"rps" default:"0" env:"JOBKPI_RPS" help:"Per-domain request rate limit (0 disables)"`
	Browser     bool          `short:"b" env:"JOBKPI_BROWSER" help:"Fetch pages with a headless browser"`
	UserAgent   string        `env:"JOBKPI_USER_AGENT" help:"User-Agent header override"`
	Debug       bool          `env:"JOBKPI_DEBUG" help:"Log collaborator calls to stderr"`
}

// Config returns the pipeline configuration described by the flags.
func (c *CLI) Config() jobkpi.Config {
	return jobkpi.Config{
		BaseURL:   c.BaseURL,
		SearchURL: c.SearchURL,
		MaxPages:  c.Pages,
		Output:    c.Output,
	}
}
