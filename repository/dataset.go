package repository

import (
	"context"

	"github.com/sparkmon/spark-job-monitor/entity"
)

const (
	DatasetJobs      = "jobs"
	DatasetOperators = "operators"
	DatasetErrors    = "errors"
	DatasetSummary   = "summary_stats"
)

// Relative dataset locations, shared by the local-directory and object-store
// backends and by the generator that produces them.
const (
	JobsPath      = "jobs/spark_jobs.parquet"
	OperatorsPath = "operators/spark_operators.parquet"
	ErrorsPath    = "errors/spark_errors.parquet"
	SummaryPath   = "summary_stats.parquet"
)

// DatasetSource loads whole datasets in storage order. Implementations return
// an empty dataset (nil error) when the source location does not exist, and a
// *DataSourceError when it exists but cannot be read.
type DatasetSource interface {
	LoadJobs(ctx context.Context) ([]entity.Job, error)
	LoadOperators(ctx context.Context) ([]entity.Operator, error)
	LoadErrors(ctx context.Context) ([]entity.JobError, error)
	LoadSummary(ctx context.Context) (*entity.SummaryStats, error)
}
