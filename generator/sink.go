package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"gorm.io/gorm"

	"github.com/sparkmon/spark-job-monitor/entity"
	"github.com/sparkmon/spark-job-monitor/infra"
	"github.com/sparkmon/spark-job-monitor/repository"
)

// Sink writes a complete generated corpus to one storage backend. Each write
// replaces whatever the backend held before.
type Sink interface {
	Write(ctx context.Context, jobs []entity.Job, operators []entity.Operator,
		jobErrors []entity.JobError, summary entity.SummaryStats) error
}

type parquetSink struct {
	dir string
}

func NewParquetSink(dir string) Sink {
	return &parquetSink{dir: dir}
}

func (s *parquetSink) Write(ctx context.Context, jobs []entity.Job, operators []entity.Operator,
	jobErrors []entity.JobError, summary entity.SummaryStats) error {
	if err := writeParquetFile(s.dir, repository.JobsPath, jobs); err != nil {
		return err
	}
	if err := writeParquetFile(s.dir, repository.OperatorsPath, operators); err != nil {
		return err
	}
	if err := writeParquetFile(s.dir, repository.ErrorsPath, jobErrors); err != nil {
		return err
	}
	return writeParquetFile(s.dir, repository.SummaryPath, []entity.SummaryStats{summary})
}

func writeParquetFile[T any](dir, relPath string, rows []T) error {
	path := filepath.Join(dir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", relPath, err)
	}
	if err := parquet.WriteFile(path, rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", relPath, err)
	}
	return nil
}

type minioSink struct {
	client *infra.MinioClient
}

func NewMinioSink(client *infra.MinioClient) Sink {
	return &minioSink{client: client}
}

func (s *minioSink) Write(ctx context.Context, jobs []entity.Job, operators []entity.Operator,
	jobErrors []entity.JobError, summary entity.SummaryStats) error {
	if err := s.client.EnsureBucket(ctx); err != nil {
		return err
	}
	if err := putParquetObject(ctx, s.client, repository.JobsPath, jobs); err != nil {
		return err
	}
	if err := putParquetObject(ctx, s.client, repository.OperatorsPath, operators); err != nil {
		return err
	}
	if err := putParquetObject(ctx, s.client, repository.ErrorsPath, jobErrors); err != nil {
		return err
	}
	return putParquetObject(ctx, s.client, repository.SummaryPath, []entity.SummaryStats{summary})
}

func putParquetObject[T any](ctx context.Context, client *infra.MinioClient, key string, rows []T) error {
	var buf bytes.Buffer
	if err := parquet.Write(&buf, rows); err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return client.PutObjectBytes(ctx, key, buf.Bytes())
}

type postgresSink struct {
	db *gorm.DB
}

func NewPostgresSink(db *gorm.DB) Sink {
	return &postgresSink{db: db}
}

func (s *postgresSink) Write(ctx context.Context, jobs []entity.Job, operators []entity.Operator,
	jobErrors []entity.JobError, summary entity.SummaryStats) error {
	db := s.db.WithContext(ctx)

	models := []interface{}{
		&entity.Job{}, &entity.Operator{}, &entity.JobError{}, &entity.SummaryStats{},
	}
	for _, model := range models {
		if err := db.Migrator().DropTable(model); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	if err := db.CreateInBatches(jobs, 500).Error; err != nil {
		return fmt.Errorf("failed to insert jobs: %w", err)
	}
	if err := db.CreateInBatches(operators, 500).Error; err != nil {
		return fmt.Errorf("failed to insert operators: %w", err)
	}
	if len(jobErrors) > 0 {
		if err := db.CreateInBatches(jobErrors, 500).Error; err != nil {
			return fmt.Errorf("failed to insert errors: %w", err)
		}
	}
	if err := db.Create(&summary).Error; err != nil {
		return fmt.Errorf("failed to insert summary: %w", err)
	}
	return nil
}
