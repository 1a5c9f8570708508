package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkmon/spark-job-monitor/entity"
)

func writeDataset[T any](t *testing.T, dir, relPath string, rows []T) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, parquet.WriteFile(path, rows))
}

func TestParquetSourceMissingFilesLoadEmpty(t *testing.T) {
	source := NewParquetSource(t.TempDir())
	ctx := context.Background()

	jobs, err := source.LoadJobs(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	operators, err := source.LoadOperators(ctx)
	require.NoError(t, err)
	assert.Empty(t, operators)

	jobErrors, err := source.LoadErrors(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobErrors)

	summary, err := source.LoadSummary(ctx)
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestParquetSourceLoadsWrittenDatasets(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	operatorID := "app_1_op_00"
	trace := "java.lang.OutOfMemoryError\n\tat org.apache.spark.Executor.run"

	writeDataset(t, dir, JobsPath, []entity.Job{
		{
			JobID: "app_1", JobName: "etl_001", JobType: "ETL_Pipeline",
			Status: entity.JobStatusCompleted, StartTime: "2026-08-20T10:00:00Z",
			EndTime: "2026-08-20T10:05:00Z", DurationSeconds: 300,
			NumStages: 5, NumExecutors: 4, InputSizeMB: 512.5,
		},
	})
	writeDataset(t, dir, OperatorsPath, []entity.Operator{
		{
			JobID: "app_1", OperatorID: operatorID, OperatorName: "ReadCSV",
			StageID: 0, Status: entity.OperatorStatusCompleted,
			Dependencies: "[]",
		},
	})
	writeDataset(t, dir, ErrorsPath, []entity.JobError{
		{
			JobID: "app_1", OperatorID: &operatorID,
			ErrorType: entity.ErrorTypeOperatorFailure,
			ErrorMessage: "OutOfMemoryError: Java heap space",
			StackTrace:   &trace,
		},
		{
			JobID: "app_1", ErrorType: entity.ErrorTypeWarning,
			ErrorMessage: "High memory usage detected",
		},
	})
	writeDataset(t, dir, SummaryPath, []entity.SummaryStats{
		{TotalJobs: 1, CompletedJobs: 1, JobTypes: `{"ETL_Pipeline":1}`},
	})

	source := NewParquetSource(dir)

	jobs, err := source.LoadJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "app_1", jobs[0].JobID)
	assert.Equal(t, 512.5, jobs[0].InputSizeMB)

	operators, err := source.LoadOperators(ctx)
	require.NoError(t, err)
	require.Len(t, operators, 1)
	assert.Equal(t, "[]", operators[0].Dependencies)

	jobErrors, err := source.LoadErrors(ctx)
	require.NoError(t, err)
	require.Len(t, jobErrors, 2)
	require.NotNil(t, jobErrors[0].OperatorID)
	assert.Equal(t, operatorID, *jobErrors[0].OperatorID)
	require.NotNil(t, jobErrors[0].StackTrace)
	assert.Nil(t, jobErrors[1].OperatorID)

	summary, err := source.LoadSummary(ctx)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, int64(1), summary.TotalJobs)
}

func TestParquetSourceCorruptFileIsDataSourceError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, filepath.FromSlash(JobsPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("not a parquet file"), 0o644))

	source := NewParquetSource(dir)
	_, err := source.LoadJobs(context.Background())
	require.Error(t, err)

	var dsErr *DataSourceError
	assert.ErrorAs(t, err, &dsErr)
	assert.Equal(t, DatasetJobs, dsErr.Dataset)
}
