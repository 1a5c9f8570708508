package repository

import (
	"bytes"
	"context"

	"github.com/parquet-go/parquet-go"
	"github.com/sparkmon/spark-job-monitor/entity"
	"github.com/sparkmon/spark-job-monitor/infra"
)

// MinioParquetSource reads the same parquet layout from an object store
// bucket instead of the local filesystem.
type MinioParquetSource struct {
	client *infra.MinioClient
}

func NewMinioParquetSource(client *infra.MinioClient) *MinioParquetSource {
	return &MinioParquetSource{client: client}
}

func (s *MinioParquetSource) LoadJobs(ctx context.Context) ([]entity.Job, error) {
	return readParquetObject[entity.Job](ctx, s.client, JobsPath, DatasetJobs)
}

func (s *MinioParquetSource) LoadOperators(ctx context.Context) ([]entity.Operator, error) {
	return readParquetObject[entity.Operator](ctx, s.client, OperatorsPath, DatasetOperators)
}

func (s *MinioParquetSource) LoadErrors(ctx context.Context) ([]entity.JobError, error) {
	return readParquetObject[entity.JobError](ctx, s.client, ErrorsPath, DatasetErrors)
}

func (s *MinioParquetSource) LoadSummary(ctx context.Context) (*entity.SummaryStats, error) {
	rows, err := readParquetObject[entity.SummaryStats](ctx, s.client, SummaryPath, DatasetSummary)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func readParquetObject[T any](ctx context.Context, client *infra.MinioClient, key, dataset string) ([]T, error) {
	data, found, err := client.GetObjectBytes(ctx, key)
	if err != nil {
		return nil, &DataSourceError{Dataset: dataset, Err: err}
	}
	if !found {
		return []T{}, nil
	}

	rows, err := parquet.Read[T](bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DataSourceError{Dataset: dataset, Err: err}
	}
	return rows, nil
}
