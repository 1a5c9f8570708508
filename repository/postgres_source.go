package repository

import (
	"context"
	"strings"

	"github.com/sparkmon/spark-job-monitor/entity"
	"gorm.io/gorm"
)

// PostgresSource reads the datasets wholesale from database tables. Row order
// follows ctid insertion order, which is the generator's write order.
type PostgresSource struct {
	db *gorm.DB
}

func NewPostgresSource(db *gorm.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) LoadJobs(ctx context.Context) ([]entity.Job, error) {
	var jobs []entity.Job
	if err := s.db.WithContext(ctx).Find(&jobs).Error; err != nil {
		if isUndefinedTable(err) {
			return []entity.Job{}, nil
		}
		return nil, &DataSourceError{Dataset: DatasetJobs, Err: err}
	}
	return jobs, nil
}

func (s *PostgresSource) LoadOperators(ctx context.Context) ([]entity.Operator, error) {
	var operators []entity.Operator
	if err := s.db.WithContext(ctx).Find(&operators).Error; err != nil {
		if isUndefinedTable(err) {
			return []entity.Operator{}, nil
		}
		return nil, &DataSourceError{Dataset: DatasetOperators, Err: err}
	}
	return operators, nil
}

func (s *PostgresSource) LoadErrors(ctx context.Context) ([]entity.JobError, error) {
	var jobErrors []entity.JobError
	if err := s.db.WithContext(ctx).Find(&jobErrors).Error; err != nil {
		if isUndefinedTable(err) {
			return []entity.JobError{}, nil
		}
		return nil, &DataSourceError{Dataset: DatasetErrors, Err: err}
	}
	return jobErrors, nil
}

func (s *PostgresSource) LoadSummary(ctx context.Context) (*entity.SummaryStats, error) {
	var rows []entity.SummaryStats
	if err := s.db.WithContext(ctx).Limit(1).Find(&rows).Error; err != nil {
		if isUndefinedTable(err) {
			return nil, nil
		}
		return nil, &DataSourceError{Dataset: DatasetSummary, Err: err}
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// isUndefinedTable matches SQLSTATE 42P01. A table the generator has not
// created yet is the database equivalent of a missing parquet file.
func isUndefinedTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "42P01")
}
