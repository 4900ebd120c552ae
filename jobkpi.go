// Package jobkpi extracts job listings from a paginated HTML job board,
// normalizes their salary and task-count fields, derives a task-per-salary
// ratio and exports the result as CSV.
//
// This package contains domain types, the pure normalization logic and the
// collaborator interfaces. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, rod/, csv/).
package jobkpi
