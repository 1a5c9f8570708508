package synth

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkmon/spark-job-monitor/entity"
	"github.com/sparkmon/spark-job-monitor/query"
)

func TestGeneratorIsDeterministicForSeed(t *testing.T) {
	a := NewGenerator(42).Jobs(50)
	b := NewGenerator(42).Jobs(50)

	require.Len(t, b, 50)
	for i := range a {
		assert.Equal(t, a[i].JobName, b[i].JobName)
		assert.Equal(t, a[i].Status, b[i].Status)
		assert.Equal(t, a[i].DurationSeconds, b[i].DurationSeconds)
	}
}

func TestGeneratorJobs(t *testing.T) {
	gen := NewGenerator(7)
	jobs := gen.Jobs(200)
	require.Len(t, jobs, 200)

	seen := make(map[string]bool)
	for _, job := range jobs {
		assert.False(t, seen[job.JobID], "duplicate id %s", job.JobID)
		seen[job.JobID] = true
		assert.True(t, strings.HasPrefix(job.JobID, "application_"))

		profile, ok := jobProfiles[job.JobType]
		require.True(t, ok, "unknown job type %s", job.JobType)
		assert.Equal(t, int64(len(profile.operators)), job.NumStages)

		assert.Contains(t,
			[]string{entity.JobStatusCompleted, entity.JobStatusFailed},
			job.Status)
		assert.GreaterOrEqual(t, job.DurationSeconds, 1.0)

		start := query.ParseTime(job.StartTime)
		end := query.ParseTime(job.EndTime)
		require.False(t, start.IsZero())
		assert.False(t, end.Before(start))

		assert.Equal(t, job.MemoryPerExecutorMB*job.NumExecutors, job.TotalMemoryMB)
		if job.Status == entity.JobStatusFailed {
			assert.Zero(t, job.OutputSizeMB)
		}
	}
}

func TestGeneratorOperators(t *testing.T) {
	gen := NewGenerator(7)
	jobs := gen.Jobs(100)
	operators := gen.Operators(jobs)

	byJob := make(map[string][]entity.Operator)
	for _, op := range operators {
		byJob[op.JobID] = append(byJob[op.JobID], op)
	}

	for _, job := range jobs {
		ops := byJob[job.JobID]
		profile := jobProfiles[job.JobType]
		require.Len(t, ops, len(profile.operators), "job %s", job.JobID)

		for i, op := range ops {
			assert.Equal(t, int64(i), op.StageID)
			assert.Equal(t, profile.operators[i], op.OperatorName)

			deps := query.ParseDependencies(op.Dependencies)
			if i == 0 {
				assert.Empty(t, deps)
			} else {
				assert.NotEmpty(t, deps)
				assert.LessOrEqual(t, len(deps), 2)
			}

			if job.Status == entity.JobStatusCompleted {
				assert.Equal(t, entity.OperatorStatusCompleted, op.Status)
			}
			if op.Status == entity.OperatorStatusSkipped {
				assert.Zero(t, op.DurationSeconds)
			}
		}
	}
}

func TestGeneratorErrors(t *testing.T) {
	gen := NewGenerator(7)
	jobs := gen.Jobs(300)
	operators := gen.Operators(jobs)
	jobErrors := gen.Errors(jobs, operators)

	failedJobs := make(map[string]bool)
	for _, job := range jobs {
		if job.Status == entity.JobStatusFailed {
			failedJobs[job.JobID] = true
		}
	}
	require.NotEmpty(t, failedJobs, "expected some failures at this corpus size")

	jobFailureErrors := make(map[string]bool)
	for _, e := range jobErrors {
		switch e.ErrorType {
		case entity.ErrorTypeJobFailure:
			assert.True(t, failedJobs[e.JobID])
			assert.NotNil(t, e.StackTrace)
			jobFailureErrors[e.JobID] = true
		case entity.ErrorTypeOperatorFailure:
			require.NotNil(t, e.OperatorID)
			assert.True(t, strings.Contains(*e.OperatorID, "_op_"))
		case entity.ErrorTypeWarning:
			assert.Equal(t, "High memory usage detected", e.ErrorMessage)
			assert.True(t, e.IsRecoverable)
			assert.Nil(t, e.OperatorID)
		default:
			t.Fatalf("unexpected error type %s", e.ErrorType)
		}
	}

	// Every failed job carries exactly its failure record.
	for jobID := range failedJobs {
		assert.True(t, jobFailureErrors[jobID], "failed job %s has no error", jobID)
	}
}

func TestGeneratorSummary(t *testing.T) {
	gen := NewGenerator(7)
	jobs := gen.Jobs(120)
	operators := gen.Operators(jobs)
	jobErrors := gen.Errors(jobs, operators)
	summary := gen.Summary(jobs, operators, jobErrors)

	assert.Equal(t, int64(120), summary.TotalJobs)
	assert.Equal(t, int64(120), summary.CompletedJobs+summary.FailedJobs)
	assert.Equal(t, int64(len(operators)), summary.TotalOperators)
	assert.Equal(t, int64(len(jobErrors)), summary.TotalErrors)
	assert.Greater(t, summary.AvgJobDuration, 0.0)

	var types map[string]int64
	require.NoError(t, json.Unmarshal([]byte(summary.JobTypes), &types))
	var sum int64
	for _, n := range types {
		sum += n
	}
	assert.Equal(t, int64(120), sum)
}
