package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/sparkmon/spark-job-monitor/http/controller"
)

type Middlewares struct {
	CORSMiddleware      gin.HandlerFunc
	RequestIDMiddleware gin.HandlerFunc
	TracingMiddleware   gin.HandlerFunc
}

func NewMiddlewares(ctrl *controller.Controller) (*Middlewares, error) {
	return &Middlewares{
		CORSMiddleware:      CORSMiddleware(ctrl.Config.EnvConfig),
		RequestIDMiddleware: RequestIDMiddleware(),
		TracingMiddleware:   TracingMiddleware(ctrl.Config.EnvConfig.Grafana.ServiceName),
	}, nil
}
