package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sparkmon/spark-job-monitor/http/controller"
	middlewares "github.com/sparkmon/spark-job-monitor/http/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(middles.CORSMiddleware)
	r.Use(middles.RequestIDMiddleware)
	r.Use(middles.TracingMiddleware)

	apiRoutes := r.Group("/api")
	{
		apiRoutes.GET("/health", ctrl.HealthCheck)
		apiRoutes.GET("/stats", ctrl.GetStats)
		apiRoutes.GET("/job-types", ctrl.GetJobTypes)
		apiRoutes.POST("/refresh", ctrl.RefreshData)

		jobRoutes := apiRoutes.Group("/jobs")
		{
			jobRoutes.GET("", ctrl.ListJobs)
			jobRoutes.GET("/:job_id", ctrl.GetJob)
			jobRoutes.GET("/:job_id/operators", ctrl.GetJobOperators)
			jobRoutes.GET("/:job_id/errors", ctrl.GetJobErrors)
			jobRoutes.GET("/:job_id/timeline", ctrl.GetJobTimeline)
		}
	}
	return r
}
