package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobkpi"
	"github.com/fwojciec/jobkpi/crawl"
	"github.com/fwojciec/jobkpi/csv"
	"github.com/fwojciec/jobkpi/goquery"
	jobhttp "github.com/fwojciec/jobkpi/http"
	"github.com/fwojciec/jobkpi/rod"
	jobslog "github.com/fwojciec/jobkpi/slog"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Optional .env file supplies JOBKPI_* variables.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the network fetcher. Used by tests.
	Fetcher jobkpi.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobkpi"),
		kong.Description("Scrape job listings, compute a task-per-salary KPI and export them to CSV"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"search_url": DefaultSearchURL, "output": jobkpi.DefaultOutput},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg := cli.Config()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", jobkpi.ErrorMessage(err))
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: cfg,
	}

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, nil)).With("run", uuid.NewString())
	}

	fetcher, err := m.newFetcher(cli, logger)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	rules := goquery.DefaultRules()
	csvExporter := csv.NewExporter(cfg.Output)
	var (
		listings jobkpi.ListingParser = goquery.NewListingParser(rules)
		details  jobkpi.DetailParser  = goquery.NewDetailParser(rules)
		exporter jobkpi.Exporter      = csvExporter
	)
	if logger != nil {
		listings = jobslog.NewLoggingListingParser(listings, logger)
		details = jobslog.NewLoggingDetailParser(details, logger)
		exporter = jobslog.NewLoggingExporter(exporter, logger)
	}

	deps.Scraper = &crawl.Scraper{
		Fetcher:     fetcher,
		Listings:    listings,
		Details:     details,
		Exporter:    exporter,
		ListPacer:   crawl.FixedPacer(cli.ListPause),
		DetailPacer: crawl.FixedPacer(cli.DetailPause),
	}

	cmd := &RunCmd{Output: csvExporter.Path()}
	return cmd.Run(deps)
}

// newFetcher builds the fetcher stack: transport, then optional logging,
// rate limiting and retries, outermost last.
func (m *Main) newFetcher(cli *CLI, logger *slog.Logger) (jobkpi.Fetcher, error) {
	var fetcher jobkpi.Fetcher
	switch {
	case m.Fetcher != nil:
		fetcher = m.Fetcher
	case cli.Browser:
		opts := []rod.Option{rod.WithFetchTimeout(cli.Timeout)}
		if cli.UserAgent != "" {
			opts = append(opts, rod.WithUserAgent(cli.UserAgent))
		}
		f, err := rod.NewFetcher(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	default:
		opts := []jobhttp.Option{jobhttp.WithTimeout(cli.Timeout)}
		if cli.UserAgent != "" {
			opts = append(opts, jobhttp.WithUserAgent(cli.UserAgent))
		}
		fetcher = jobhttp.NewFetcher(opts...)
	}

	if logger != nil {
		fetcher = jobslog.NewLoggingFetcher(fetcher, logger)
	}
	if cli.RPS > 0 {
		fetcher = crawl.NewLimitedFetcher(fetcher, crawl.NewDomainLimiter(cli.RPS))
	}
	if cli.Retries > 0 {
		var logf crawl.LogFunc
		if logger != nil {
			logf = func(format string, args ...any) {
				logger.Warn(fmt.Sprintf(format, args...))
			}
		}
		fetcher = crawl.NewRetryFetcher(fetcher, retryDelays(cli.Retries), logf)
	}
	return fetcher, nil
}

// retryDelays returns the first n delays of the default backoff schedule,
// doubling the last delay when n exceeds it.
func retryDelays(n int) []time.Duration {
	delays := crawl.DefaultRetryDelays()
	for len(delays) < n {
		delays = append(delays, 2*delays[len(delays)-1])
	}
	return delays[:n]
}
