package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/sparkmon/spark-job-monitor/config"
	"github.com/sparkmon/spark-job-monitor/http/controller"
	routes "github.com/sparkmon/spark-job-monitor/http/route"
	infraPkg "github.com/sparkmon/spark-job-monitor/infra"
	"github.com/sparkmon/spark-job-monitor/repository"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)
	repo := repository.InitRepository(cfg, infra)

	ctx := context.Background()

	// Warm the cache so the first request doesn't pay for the initial load. A
	// missing dataset is fine here; the generator may not have run yet.
	if snap, err := repo.Cache.Get(ctx, false); err != nil {
		infra.Logger.WarningWithContextf(ctx, "Initial data load failed: %v", err)
	} else {
		infra.Logger.InfoWithContextf(ctx, "Initial data loaded: %d jobs, %d operators, %d errors",
			len(snap.Jobs), len(snap.Operators), len(snap.Errors))
	}

	ctrl := controller.NewController(cfg, infra, repo)
	router := routes.SetupRouter(ctrl)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := infra.Telemetry.Shutdown(shutdownCtx); err != nil {
			log.Printf("Telemetry shutdown failed: %v", err)
		}
		if err := infra.Logger.Shutdown(shutdownCtx); err != nil {
			log.Printf("Logger shutdown failed: %v", err)
		}
	}()

	addr := ":" + cfg.EnvConfig.Server.Port
	log.Println("HTTP Server started on " + addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
