package query

import (
	"sort"
	"time"

	"github.com/sparkmon/spark-job-monitor/entity"
)

// ParseTime parses an RFC3339 timestamp, yielding the zero time for anything
// unparseable so ordering stays total.
func ParseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SortJobs orders jobs by the named field. start_time and end_time compare as
// parsed timestamps, the remaining fields by their natural value with a zero
// key for unknown field names. Load order is the tie-break.
func SortJobs(jobs []entity.Job, field string, descending bool) []entity.Job {
	sorted := make([]entity.Job, len(jobs))
	copy(sorted, jobs)

	less := jobLess(field)
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func jobLess(field string) func(a, b entity.Job) bool {
	switch field {
	case "start_time":
		return func(a, b entity.Job) bool {
			return ParseTime(a.StartTime).Before(ParseTime(b.StartTime))
		}
	case "end_time":
		return func(a, b entity.Job) bool {
			return ParseTime(a.EndTime).Before(ParseTime(b.EndTime))
		}
	case "job_id":
		return func(a, b entity.Job) bool { return a.JobID < b.JobID }
	case "job_name":
		return func(a, b entity.Job) bool { return a.JobName < b.JobName }
	case "job_type":
		return func(a, b entity.Job) bool { return a.JobType < b.JobType }
	case "status":
		return func(a, b entity.Job) bool { return a.Status < b.Status }
	default:
		key := jobNumericKey(field)
		return func(a, b entity.Job) bool { return key(a) < key(b) }
	}
}

// jobNumericKey maps a field name to a numeric sort key. An unknown field
// yields 0 for every record, which leaves the input in load order.
func jobNumericKey(field string) func(entity.Job) float64 {
	switch field {
	case "duration_seconds":
		return func(j entity.Job) float64 { return j.DurationSeconds }
	case "num_stages":
		return func(j entity.Job) float64 { return float64(j.NumStages) }
	case "num_tasks":
		return func(j entity.Job) float64 { return float64(j.NumTasks) }
	case "num_executors":
		return func(j entity.Job) float64 { return float64(j.NumExecutors) }
	case "input_size_mb":
		return func(j entity.Job) float64 { return j.InputSizeMB }
	case "output_size_mb":
		return func(j entity.Job) float64 { return j.OutputSizeMB }
	case "memory_per_executor_mb":
		return func(j entity.Job) float64 { return float64(j.MemoryPerExecutorMB) }
	case "total_memory_mb":
		return func(j entity.Job) float64 { return float64(j.TotalMemoryMB) }
	case "cpu_cores_per_executor":
		return func(j entity.Job) float64 { return float64(j.CPUCoresPerExecutor) }
	case "shuffle_read_mb":
		return func(j entity.Job) float64 { return j.ShuffleReadMB }
	case "shuffle_write_mb":
		return func(j entity.Job) float64 { return j.ShuffleWriteMB }
	case "gc_time_ms":
		return func(j entity.Job) float64 { return float64(j.GCTimeMS) }
	default:
		return func(entity.Job) float64 { return 0 }
	}
}
