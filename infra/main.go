package infra

import (
	"github.com/sparkmon/spark-job-monitor/config"
)

type Infra struct {
	Logger    *LoggerClient
	Telemetry *TelemetryClient
	Minio     *MinioClient
	Postgres  *PostgresClient
}

var infraInstance *Infra

// InitInfra initializes the process-lifetime clients. Minio and Postgres are
// only brought up when the configured data backend needs them.
func InitInfra(cfg *config.Config) *Infra {
	if infraInstance != nil {
		return infraInstance
	}

	logger := InitLoggerClient(cfg.EnvConfig)
	if logger == nil {
		panic("Failed to initialize Logger service")
	}

	telemetry := InitTelemetryClient(cfg.EnvConfig)
	if telemetry == nil {
		panic("Failed to initialize Telemetry service")
	}

	var minio *MinioClient
	if cfg.EnvConfig.Data.Backend == "minio" {
		minio = InitMinioClient(cfg.EnvConfig)
		if minio == nil {
			panic("Failed to initialize MinIO service")
		}
	}

	var pg *PostgresClient
	if cfg.EnvConfig.Data.Backend == "postgres" {
		pg = InitPostgresClient(cfg.EnvConfig)
		if pg == nil {
			panic("Failed to initialize Postgres service")
		}
	}

	infraInstance = &Infra{
		Logger:    logger,
		Telemetry: telemetry,
		Minio:     minio,
		Postgres:  pg,
	}

	return infraInstance
}

func GetClient() *Infra {
	if infraInstance == nil {
		panic("Infra not initialized. Call InitInfra() first.")
	}
	return infraInstance
}
