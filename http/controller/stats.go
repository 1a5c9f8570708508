package controller

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sparkmon/spark-job-monitor/http/controller/dto"
	"github.com/sparkmon/spark-job-monitor/stats"
	"github.com/sparkmon/spark-job-monitor/utils"
)

func (ctrl *Controller) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	snap, err := ctrl.Repository.Cache.Get(ctx, false)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Stats] Failed to load snapshot: %v", err)
		utils.JSON500(c, "Failed to fetch stats")
		return
	}

	utils.JSON200(c, dto.StatsResponse{
		Report:      stats.Compute(snap, time.Now()),
		LastUpdated: time.Now().Format(time.RFC3339),
	})
}
