package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/sparkmon/spark-job-monitor/config"
	"github.com/sparkmon/spark-job-monitor/generator/synth"
	infraPkg "github.com/sparkmon/spark-job-monitor/infra"
)

func main() {
	numJobs := flag.Int("jobs", 1000, "number of jobs to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)

	sink, err := buildSink(cfg, infra)
	if err != nil {
		log.Fatalf("Failed to build data sink: %v", err)
	}

	gen := synth.NewGenerator(*seed)
	jobs := gen.Jobs(*numJobs)
	operators := gen.Operators(jobs)
	jobErrors := gen.Errors(jobs, operators)
	summary := gen.Summary(jobs, operators, jobErrors)

	ctx := context.Background()
	if err := sink.Write(ctx, jobs, operators, jobErrors, summary); err != nil {
		infra.Logger.ErrorWithContextf(ctx, err, "Failed to write datasets: %v", err)
		log.Fatalf("Failed to write datasets: %v", err)
	}

	log.Printf("Generated %d jobs, %d operators, %d errors (backend: %s)",
		len(jobs), len(operators), len(jobErrors), cfg.EnvConfig.Data.Backend)
}

func buildSink(cfg *config.Config, infra *infraPkg.Infra) (Sink, error) {
	switch cfg.EnvConfig.Data.Backend {
	case "minio":
		return NewMinioSink(infra.Minio), nil
	case "postgres":
		return NewPostgresSink(infra.Postgres.DB), nil
	case "parquet":
		return NewParquetSink(cfg.EnvConfig.Data.Dir), nil
	default:
		return nil, fmt.Errorf("unknown data backend %q", cfg.EnvConfig.Data.Backend)
	}
}
