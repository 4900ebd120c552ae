package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/jobkpi"
	"github.com/fwojciec/jobkpi/mock"
	jobslog "github.com/fwojciec/jobkpi/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingListingParser_ParseListings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.ListingParser{
		ParseListingsFn: func(string, string) (*jobkpi.ListingPage, error) {
			return &jobkpi.ListingPage{Containers: 3, Jobs: []*jobkpi.Job{{Title: "a"}, {Title: "b"}}}, nil
		},
	}

	page, err := jobslog.NewLoggingListingParser(inner, logger).ParseListings("<html></html>", "https://x.com")

	require.NoError(t, err)
	assert.Len(t, page.Jobs, 2)
	output := buf.String()
	assert.Contains(t, output, "parse listings")
	assert.Contains(t, output, "containers=3")
	assert.Contains(t, output, "jobs=2")
	assert.Contains(t, output, "dropped=1")
}

func TestLoggingDetailParser_ParseDetail(t *testing.T) {
	t.Parallel()

	t.Run("logs counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DetailParser{
			ParseDetailFn: func(string) (*jobkpi.Detail, error) {
				return &jobkpi.Detail{HasContent: true, TaskCount: 6, Skills: []string{"Go", "SQL"}}, nil
			},
		}

		_, err := jobslog.NewLoggingDetailParser(inner, logger).ParseDetail("<html></html>")

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "content=true")
		assert.Contains(t, output, "tasks=6")
		assert.Contains(t, output, "skills=2")
	})

	t.Run("logs error with nil detail", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DetailParser{
			ParseDetailFn: func(string) (*jobkpi.Detail, error) {
				return nil, errors.New("bad markup")
			},
		}

		_, err := jobslog.NewLoggingDetailParser(inner, logger).ParseDetail("")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"bad markup\"")
	})
}

func TestLoggingExporter_Export(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Exporter{
		ExportFn: func(context.Context, []*jobkpi.Job) error { return nil },
	}

	err := jobslog.NewLoggingExporter(inner, logger).Export(context.Background(), []*jobkpi.Job{{Title: "a"}})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "rows=1")
}
