package query

import (
	"sort"

	"github.com/sparkmon/spark-job-monitor/entity"
)

// OperatorsForJob returns the job's operators in load order. Dangling job
// references simply never match.
func OperatorsForJob(operators []entity.Operator, jobID string) []entity.Operator {
	matched := make([]entity.Operator, 0)
	for _, op := range operators {
		if op.JobID == jobID {
			matched = append(matched, op)
		}
	}
	return matched
}

// ErrorsForJob returns the job's errors in load order; empty is a valid
// result.
func ErrorsForJob(jobErrors []entity.JobError, jobID string) []entity.JobError {
	matched := make([]entity.JobError, 0)
	for _, e := range jobErrors {
		if e.JobID == jobID {
			matched = append(matched, e)
		}
	}
	return matched
}

func SortOperatorsByStage(operators []entity.Operator) []entity.Operator {
	sorted := make([]entity.Operator, len(operators))
	copy(sorted, operators)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StageID < sorted[j].StageID
	})
	return sorted
}

func SortOperatorsByStartTime(operators []entity.Operator) []entity.Operator {
	sorted := make([]entity.Operator, len(operators))
	copy(sorted, operators)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ParseTime(sorted[i].StartTime).Before(ParseTime(sorted[j].StartTime))
	})
	return sorted
}
