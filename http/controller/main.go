package controller

import (
	"github.com/sparkmon/spark-job-monitor/config"
	"github.com/sparkmon/spark-job-monitor/entity"
	"github.com/sparkmon/spark-job-monitor/http/controller/dto"
	"github.com/sparkmon/spark-job-monitor/infra"
	"github.com/sparkmon/spark-job-monitor/query"
	"github.com/sparkmon/spark-job-monitor/repository"
)

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository
}

func NewController(config *config.Config, infra *infra.Infra, repo *repository.Repository) *Controller {
	if repo == nil {
		panic("Failed to initialize Repository")
	}
	return &Controller{
		Config:     config,
		Infra:      infra,
		Repository: repo,
	}
}

func formatJob(job entity.Job) dto.JobView {
	return dto.JobView{
		Job:               job,
		DurationFormatted: query.FormatDuration(job.DurationSeconds),
	}
}

func formatJobs(jobs []entity.Job) []dto.JobView {
	views := make([]dto.JobView, 0, len(jobs))
	for _, job := range jobs {
		views = append(views, formatJob(job))
	}
	return views
}

func formatOperators(operators []entity.Operator) []dto.OperatorView {
	views := make([]dto.OperatorView, 0, len(operators))
	for _, op := range operators {
		views = append(views, dto.OperatorView{
			Operator:          op,
			Dependencies:      query.ParseDependencies(op.Dependencies),
			DurationFormatted: query.FormatDuration(op.DurationSeconds),
		})
	}
	return views
}
