// Package query holds the pure query primitives over a snapshot: equality
// filtering, type-aware sorting, pagination, join-by-key and derived fields.
// Nothing in this package mutates its inputs.
package query

import (
	"github.com/sparkmon/spark-job-monitor/entity"
)

// FilterJobs returns the jobs matching every field=value predicate. A field
// that is unknown or empty on a record never matches a non-empty predicate.
func FilterJobs(jobs []entity.Job, filters map[string]string) []entity.Job {
	if len(filters) == 0 {
		return jobs
	}

	matched := make([]entity.Job, 0, len(jobs))
	for _, job := range jobs {
		if jobMatches(job, filters) {
			matched = append(matched, job)
		}
	}
	return matched
}

func jobMatches(job entity.Job, filters map[string]string) bool {
	for field, want := range filters {
		value, ok := jobFieldValue(job, field)
		if !ok || value != want {
			return false
		}
	}
	return true
}

func jobFieldValue(job entity.Job, field string) (string, bool) {
	switch field {
	case "job_id":
		return job.JobID, true
	case "job_name":
		return job.JobName, true
	case "job_type":
		return job.JobType, true
	case "status":
		return job.Status, true
	default:
		return "", false
	}
}
