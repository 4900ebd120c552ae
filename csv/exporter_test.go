package csv_test

import (
	"bytes"
	"context"
	stdcsv "encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/jobkpi"
	"github.com/fwojciec/jobkpi/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func sampleJobs() []*jobkpi.Job {
	return []*jobkpi.Job{
		{
			Title:        "Backend Engineer",
			Company:      "Acme",
			SalaryText:   "£60k - £70k",
			SalaryValue:  ptr(65000),
			ContractType: "Contract",
			Link:         "https://www.free-work.com/jobs/1",
			Description:  "Build services",
			TaskCount:    6,
			KPIRatio:     ptr(0.9231),
			Skills:       "Go, PostgreSQL, Docker",
		},
		{
			Title:     "Développeur, \"Senior\"",
			TaskCount: 0,
		},
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	t.Run("writes header and rows in order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := csv.Write(&buf, sampleJobs())
		require.NoError(t, err)

		records, err := stdcsv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, csv.Columns, records[0])
		assert.Equal(t, []string{
			"Backend Engineer", "Acme", "£60k - £70k", "65000.0", "Contract",
			"https://www.free-work.com/jobs/1", "6", "0.9231", "Go, PostgreSQL, Docker",
		}, records[1])
	})

	t.Run("renders missing fields", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, csv.Write(&buf, sampleJobs()))

		records, err := stdcsv.NewReader(&buf).ReadAll()
		require.NoError(t, err)

		assert.Equal(t, []string{
			"Développeur, \"Senior\"", "N/C", "N/C", "", "N/C", "N/C", "0", "", "N/C",
		}, records[2])
	})

	t.Run("does not modify jobs", func(t *testing.T) {
		t.Parallel()

		jobs := sampleJobs()
		before := *jobs[1]

		require.NoError(t, csv.Write(&bytes.Buffer{}, jobs))

		assert.Equal(t, before, *jobs[1])
	})
}

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	t.Run("writes UTF-8 file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "jobs.csv")
		exporter := csv.NewExporter(path)

		err := exporter.Export(context.Background(), sampleJobs())
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "title,company,salary_text,salary_value,contract_type,link,task_count,kpi_ratio,skills\n")
		assert.Contains(t, string(data), "£60k - £70k")
		assert.Contains(t, string(data), "Développeur")

		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("re-export is byte-identical", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "jobs.csv")
		exporter := csv.NewExporter(path)

		require.NoError(t, exporter.Export(context.Background(), sampleJobs()))
		first, err := os.ReadFile(path)
		require.NoError(t, err)

		require.NoError(t, exporter.Export(context.Background(), sampleJobs()))
		second, err := os.ReadFile(path)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("returns error for unwritable destination", func(t *testing.T) {
		t.Parallel()

		exporter := csv.NewExporter(filepath.Join(t.TempDir(), "missing", "jobs.csv"))

		err := exporter.Export(context.Background(), sampleJobs())

		require.Error(t, err)
		assert.Equal(t, jobkpi.EINVALID, jobkpi.ErrorCode(err))
	})

	t.Run("empty job set writes header only", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "jobs.csv")

		require.NoError(t, csv.NewExporter(path).Export(context.Background(), nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "title,company,salary_text,salary_value,contract_type,link,task_count,kpi_ratio,skills\n", string(data))
	})
}

func TestExporter_Path(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "jobs_with_kpi.csv")

	assert.Equal(t, path, csv.NewExporter(path).Path())
}
