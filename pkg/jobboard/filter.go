// Package jobboard holds the public board's client-side filtering: a pure
// predicate over the already-fetched job list, nothing persisted beyond the
// caller's own query parameters.
package jobboard

import (
	"sort"
	"strings"

	"github.com/qazimatch/qazimatch/pkg/client"
)

// Filters mirrors the board's search controls. Zero values mean "no
// constraint".
type Filters struct {
	Search       string
	Location     string
	ContractType string
	MinSalary    *int64
	MaxSalary    *int64
}

// Filter returns the jobs matching f, in input order. Pure: the input slice
// is never mutated, and Filter(Filter(jobs, f), f) == Filter(jobs, f).
func Filter(jobs []client.Job, f Filters) []client.Job {
	out := make([]client.Job, 0, len(jobs))
	for _, job := range jobs {
		if matches(job, f) {
			out = append(out, job)
		}
	}
	return out
}

func matches(job client.Job, f Filters) bool {
	if f.Search != "" && !matchesSearch(job, f.Search) {
		return false
	}
	if f.Location != "" {
		meta, err := job.DecodeMeta()
		if err != nil || !strings.EqualFold(meta.Location, f.Location) {
			return false
		}
	}
	if f.ContractType != "" && !strings.EqualFold(job.ContractType, f.ContractType) {
		return false
	}
	if f.MinSalary != nil || f.MaxSalary != nil {
		// Salary-range filters only keep jobs that state a salary.
		if job.Salary == nil {
			return false
		}
		if f.MinSalary != nil && *job.Salary < *f.MinSalary {
			return false
		}
		if f.MaxSalary != nil && *job.Salary > *f.MaxSalary {
			return false
		}
	}
	return true
}

// matchesSearch checks the free-text query against title, description and
// the decoded requirement skills.
func matchesSearch(job client.Job, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(job.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(job.Description), q) {
		return true
	}
	if reqs, err := job.DecodeRequirements(); err == nil {
		for _, skill := range reqs.Skills {
			if strings.Contains(strings.ToLower(skill), q) {
				return true
			}
		}
	}
	return false
}

// Locations lists the distinct locations present in jobs, sorted, for the
// filter dropdown.
func Locations(jobs []client.Job) []string {
	return distinct(jobs, func(j client.Job) string {
		meta, err := j.DecodeMeta()
		if err != nil {
			return ""
		}
		return meta.Location
	})
}

// ContractTypes lists the distinct contract types present in jobs, sorted.
func ContractTypes(jobs []client.Job) []string {
	return distinct(jobs, func(j client.Job) string { return j.ContractType })
}

func distinct(jobs []client.Job, key func(client.Job) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, job := range jobs {
		if k := key(job); k != "" && !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
