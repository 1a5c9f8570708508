package repository

import (
	"context"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/sparkmon/spark-job-monitor/entity"
)

// ParquetSource reads the datasets from parquet files under a base directory,
// in the layout the generator writes.
type ParquetSource struct {
	dir string
}

func NewParquetSource(dir string) *ParquetSource {
	return &ParquetSource{dir: dir}
}

func (s *ParquetSource) LoadJobs(ctx context.Context) ([]entity.Job, error) {
	return readParquetFile[entity.Job](s.dir, JobsPath, DatasetJobs)
}

func (s *ParquetSource) LoadOperators(ctx context.Context) ([]entity.Operator, error) {
	return readParquetFile[entity.Operator](s.dir, OperatorsPath, DatasetOperators)
}

func (s *ParquetSource) LoadErrors(ctx context.Context) ([]entity.JobError, error) {
	return readParquetFile[entity.JobError](s.dir, ErrorsPath, DatasetErrors)
}

func (s *ParquetSource) LoadSummary(ctx context.Context) (*entity.SummaryStats, error) {
	rows, err := readParquetFile[entity.SummaryStats](s.dir, SummaryPath, DatasetSummary)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func readParquetFile[T any](dir, relPath, dataset string) ([]T, error) {
	path := filepath.Join(dir, filepath.FromSlash(relPath))

	if _, err := os.Stat(path); err != nil {
		// The generator not having run yet is a normal state.
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, &DataSourceError{Dataset: dataset, Err: err}
	}

	rows, err := parquet.ReadFile[T](path)
	if err != nil {
		return nil, &DataSourceError{Dataset: dataset, Err: err}
	}
	return rows, nil
}
