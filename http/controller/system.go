package controller

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sparkmon/spark-job-monitor/http/controller/dto"
	"github.com/sparkmon/spark-job-monitor/utils"
)

// HealthCheck reports cache presence and configuration. It never triggers a
// reload.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	cache := dto.CacheInfo{
		TTLSecs: int(ctrl.Repository.Cache.TTL() / time.Second),
	}
	if snap := ctrl.Repository.Cache.Current(); snap != nil {
		cache.Loaded = true
		cache.LoadedAt = snap.LoadedAt.Format(time.RFC3339)
		cache.Jobs = len(snap.Jobs)
		cache.Operators = len(snap.Operators)
		cache.Errors = len(snap.Errors)
	}

	utils.JSON200(c, dto.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Backend:   ctrl.Config.EnvConfig.Data.Backend,
		DataDir:   ctrl.Config.EnvConfig.Data.Dir,
		Cache:     cache,
	})
}

func (ctrl *Controller) GetJobTypes(c *gin.Context) {
	ctx := c.Request.Context()

	snap, err := ctrl.Repository.Cache.Get(ctx, false)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[JobTypes] Failed to load snapshot: %v", err)
		utils.JSON500(c, "Failed to fetch job types")
		return
	}

	seen := make(map[string]bool)
	jobTypes := make([]string, 0)
	for _, job := range snap.Jobs {
		if job.JobType != "" && !seen[job.JobType] {
			seen[job.JobType] = true
			jobTypes = append(jobTypes, job.JobType)
		}
	}

	utils.JSON200(c, dto.JobTypesResponse{JobTypes: jobTypes})
}

func (ctrl *Controller) RefreshData(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := ctrl.Repository.Cache.Get(ctx, true); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Refresh] Failed to refresh data: %v", err)
		utils.JSON500(c, "Failed to refresh data")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Refresh] Data cache refreshed")
	utils.JSON200(c, dto.RefreshResponse{Message: "Data cache refreshed successfully"})
}
