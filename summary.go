package jobkpi

import "sort"

// Summary holds the salary statistics reported after an export.
type Summary struct {
	// Total is the number of exported jobs.
	Total int

	// WithSalary is the number of jobs that have a salary value.
	// MeanSalary and MedianSalary are zero when it is zero.
	WithSalary   int
	MeanSalary   float64
	MedianSalary float64
}

// Summarize computes salary statistics over the jobs that have a salary value.
// The median of an even number of values is the mean of the two middle ones.
func Summarize(jobs []*Job) Summary {
	s := Summary{Total: len(jobs)}

	values := make([]float64, 0, len(jobs))
	for _, job := range jobs {
		if job.SalaryValue != nil {
			values = append(values, *job.SalaryValue)
		}
	}
	if len(values) == 0 {
		return s
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	sort.Float64s(values)

	s.WithSalary = len(values)
	s.MeanSalary = sum / float64(len(values))
	mid := len(values) / 2
	if len(values)%2 == 0 {
		s.MedianSalary = (values[mid-1] + values[mid]) / 2
	} else {
		s.MedianSalary = values[mid]
	}
	return s
}
