package repository

import (
	"time"

	"github.com/sparkmon/spark-job-monitor/config"
	"github.com/sparkmon/spark-job-monitor/infra"
)

type Repository struct {
	Source DatasetSource
	Cache  *SnapshotCache
}

var repository *Repository

func InitRepository(cfg *config.Config, infra *infra.Infra) *Repository {
	var source DatasetSource
	switch cfg.EnvConfig.Data.Backend {
	case "minio":
		source = NewMinioParquetSource(infra.Minio)
	case "postgres":
		source = NewPostgresSource(infra.Postgres.DB)
	default:
		source = NewParquetSource(cfg.EnvConfig.Data.Dir)
	}

	ttl := time.Duration(cfg.EnvConfig.Data.CacheTTLSeconds) * time.Second

	repository = &Repository{
		Source: source,
		Cache:  NewSnapshotCache(source, ttl),
	}
	return repository
}

func GetRepository() *Repository {
	if repository == nil {
		panic("repository not initialized")
	}
	return repository
}
