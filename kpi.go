package jobkpi

// kpiScale brings the task-per-currency-unit density onto a readable range.
const kpiScale = 10000

// ComputeKPI sets KPIRatio on every job that has a nonzero salary value and
// a nonzero task count, and clears it on all others.
//
// The ratio is TaskCount / SalaryValue * 10000, rounded to 4 decimal places.
func ComputeKPI(jobs []*Job) {
	for _, job := range jobs {
		job.KPIRatio = nil
		if job.SalaryValue == nil || *job.SalaryValue == 0 || job.TaskCount == 0 {
			continue
		}
		ratio := roundTo(float64(job.TaskCount) / *job.SalaryValue * kpiScale, 4)
		job.KPIRatio = &ratio
	}
}
