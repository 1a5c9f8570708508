package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sparkmon/spark-job-monitor/entity"
)

func TestJobByID(t *testing.T) {
	jobs := []entity.Job{
		{JobID: "a", JobName: "first"},
		{JobID: "b"},
		{JobID: "a", JobName: "duplicate"},
	}

	job, err := JobByID(jobs, "b")
	assert.NoError(t, err)
	assert.Equal(t, "b", job.JobID)

	// Duplicate ids resolve to the first record.
	job, err = JobByID(jobs, "a")
	assert.NoError(t, err)
	assert.Equal(t, "first", job.JobName)

	_, err = JobByID(jobs, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOperatorsForJob(t *testing.T) {
	operators := []entity.Operator{
		{JobID: "a", OperatorID: "a_op_00"},
		{JobID: "b", OperatorID: "b_op_00"},
		{JobID: "a", OperatorID: "a_op_01"},
	}

	got := OperatorsForJob(operators, "a")
	assert.Len(t, got, 2)
	assert.Equal(t, "a_op_00", got[0].OperatorID)
	assert.Equal(t, "a_op_01", got[1].OperatorID)

	got = OperatorsForJob(operators, "missing")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestErrorsForJob(t *testing.T) {
	jobErrors := []entity.JobError{
		{JobID: "a", ErrorType: entity.ErrorTypeJobFailure},
		{JobID: "b", ErrorType: entity.ErrorTypeWarning},
	}

	got := ErrorsForJob(jobErrors, "b")
	assert.Len(t, got, 1)
	assert.Equal(t, entity.ErrorTypeWarning, got[0].ErrorType)

	got = ErrorsForJob(jobErrors, "missing")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSortOperatorsByStage(t *testing.T) {
	operators := []entity.Operator{
		{OperatorID: "c", StageID: 2},
		{OperatorID: "a", StageID: 0},
		{OperatorID: "b", StageID: 1},
	}

	got := SortOperatorsByStage(operators)
	assert.Equal(t, "a", got[0].OperatorID)
	assert.Equal(t, "b", got[1].OperatorID)
	assert.Equal(t, "c", got[2].OperatorID)
	assert.Equal(t, "c", operators[0].OperatorID)
}

func TestSortOperatorsByStartTime(t *testing.T) {
	operators := []entity.Operator{
		{OperatorID: "later", StartTime: "2026-08-20T12:05:00Z"},
		{OperatorID: "earlier", StartTime: "2026-08-20T12:00:00Z"},
		{OperatorID: "unparseable", StartTime: "nope"},
	}

	got := SortOperatorsByStartTime(operators)
	assert.Equal(t, "unparseable", got[0].OperatorID)
	assert.Equal(t, "earlier", got[1].OperatorID)
	assert.Equal(t, "later", got[2].OperatorID)
}
