// Package csv provides a CSV file implementation of jobkpi.Exporter.
package csv

import (
	"context"
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fwojciec/jobkpi"
)

// Columns is the header row, in output order.
var Columns = []string{
	"title",
	"company",
	"salary_text",
	"salary_value",
	"contract_type",
	"link",
	"task_count",
	"kpi_ratio",
	"skills",
}

// Ensure Exporter implements jobkpi.Exporter at compile time.
var _ jobkpi.Exporter = (*Exporter)(nil)

// Exporter writes jobs as a UTF-8 CSV file.
// The file is written next to its destination and renamed into place, so a
// failed export never leaves a partial file behind.
type Exporter struct {
	path string
}

// NewExporter creates an Exporter writing to path.
func NewExporter(path string) *Exporter {
	return &Exporter{path: path}
}

// Path returns the destination file.
func (e *Exporter) Path() string {
	return e.path
}

// Export writes the header and one row per job, in the jobs' order.
func (e *Exporter) Export(ctx context.Context, jobs []*jobkpi.Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp := e.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return jobkpi.Errorf(jobkpi.EINVALID, "cannot write %s: %v", e.path, err)
	}

	if err := Write(f, jobs); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, e.path); err != nil {
		_ = os.Remove(tmp)
		return jobkpi.Errorf(jobkpi.EINVALID, "cannot write %s: %v", e.path, err)
	}
	return nil
}

// Write writes the header and one row per job to w.
func Write(w io.Writer, jobs []*jobkpi.Job) error {
	cw := stdcsv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, job := range jobs {
		if err := cw.Write(Row(job)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Row projects a job onto Columns. Text fields that were not captured are
// written as jobkpi.NotCaptured and missing numbers as empty cells.
func Row(job *jobkpi.Job) []string {
	return []string{
		textCell(job.Title),
		textCell(job.Company),
		textCell(job.SalaryText),
		floatCell(job.SalaryValue),
		textCell(job.ContractType),
		textCell(job.Link),
		strconv.Itoa(job.TaskCount),
		floatCell(job.KPIRatio),
		textCell(job.Skills),
	}
}

func textCell(s string) string {
	if s == "" {
		return jobkpi.NotCaptured
	}
	return s
}

// floatCell formats v with the shortest exact representation, keeping a
// decimal point on whole numbers so the column reads as numeric.
func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	s := strconv.FormatFloat(*v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
