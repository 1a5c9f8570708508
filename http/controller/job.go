package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sparkmon/spark-job-monitor/http/controller/dto"
	"github.com/sparkmon/spark-job-monitor/query"
	"github.com/sparkmon/spark-job-monitor/utils"
)

func (ctrl *Controller) ListJobs(c *gin.Context) {
	ctx := c.Request.Context()

	limit, err := intQueryParam(c, "limit", 50)
	if err != nil {
		utils.JSON400(c, "Invalid limit parameter")
		return
	}
	offset, err := intQueryParam(c, "offset", 0)
	if err != nil {
		utils.JSON400(c, "Invalid offset parameter")
		return
	}
	sortBy := c.DefaultQuery("sort_by", "start_time")
	sortOrder := c.DefaultQuery("sort_order", "desc")

	snap, err := ctrl.Repository.Cache.Get(ctx, false)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Jobs] Failed to load snapshot: %v", err)
		utils.JSON500(c, "Failed to fetch jobs")
		return
	}

	filters := make(map[string]string)
	if status := c.Query("status"); status != "" {
		filters["status"] = status
	}
	if jobType := c.Query("job_type"); jobType != "" {
		filters["job_type"] = jobType
	}

	jobs := query.FilterJobs(snap.Jobs, filters)
	jobs = query.SortJobs(jobs, sortBy, sortOrder == "desc")
	page, total, hasMore := query.Paginate(jobs, limit, offset)

	utils.JSON200(c, dto.JobsResponse{
		Jobs: formatJobs(page),
		Pagination: dto.PaginationInfo{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: hasMore,
		},
	})
}

func (ctrl *Controller) GetJob(c *gin.Context) {
	ctx := c.Request.Context()
	jobID := c.Param("job_id")

	snap, err := ctrl.Repository.Cache.Get(ctx, false)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Jobs] Failed to load snapshot: %v", err)
		utils.JSON500(c, "Failed to fetch job")
		return
	}

	job, err := query.JobByID(snap.Jobs, jobID)
	if err != nil {
		utils.JSON404(c, "Job not found")
		return
	}

	utils.JSON200(c, formatJob(job))
}

func (ctrl *Controller) GetJobOperators(c *gin.Context) {
	ctx := c.Request.Context()
	jobID := c.Param("job_id")

	snap, err := ctrl.Repository.Cache.Get(ctx, false)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Operators] Failed to load snapshot: %v", err)
		utils.JSON500(c, "Failed to fetch operators")
		return
	}

	operators := query.OperatorsForJob(snap.Operators, jobID)
	// A job with zero operators is reported as not found, while zero errors
	// below is an empty list. The asymmetry is kept for compatibility with
	// existing consumers.
	if len(operators) == 0 {
		utils.JSON404(c, "No operators found for this job")
		return
	}

	utils.JSON200(c, dto.JobOperatorsResponse{
		JobID:     jobID,
		Operators: formatOperators(query.SortOperatorsByStage(operators)),
	})
}

func (ctrl *Controller) GetJobErrors(c *gin.Context) {
	ctx := c.Request.Context()
	jobID := c.Param("job_id")

	snap, err := ctrl.Repository.Cache.Get(ctx, false)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Errors] Failed to load snapshot: %v", err)
		utils.JSON500(c, "Failed to fetch errors")
		return
	}

	utils.JSON200(c, dto.JobErrorsResponse{
		JobID:  jobID,
		Errors: query.ErrorsForJob(snap.Errors, jobID),
	})
}

func (ctrl *Controller) GetJobTimeline(c *gin.Context) {
	ctx := c.Request.Context()
	jobID := c.Param("job_id")

	snap, err := ctrl.Repository.Cache.Get(ctx, false)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Timeline] Failed to load snapshot: %v", err)
		utils.JSON500(c, "Failed to fetch timeline")
		return
	}

	job, err := query.JobByID(snap.Jobs, jobID)
	if err != nil {
		if errors.Is(err, query.ErrNotFound) {
			utils.JSON404(c, "Job not found")
			return
		}
		utils.JSON500(c, "Failed to fetch timeline")
		return
	}

	operators := query.SortOperatorsByStartTime(query.OperatorsForJob(snap.Operators, jobID))
	timeline := make([]dto.TimelineOperator, 0, len(operators))
	for _, op := range operators {
		timeline = append(timeline, dto.TimelineOperator{
			OperatorID:       op.OperatorID,
			OperatorName:     op.OperatorName,
			StartTime:        op.StartTime,
			EndTime:          op.EndTime,
			DurationSeconds:  op.DurationSeconds,
			Status:           op.Status,
			RecordsProcessed: op.RecordsProcessed,
		})
	}

	utils.JSON200(c, dto.JobTimelineResponse{
		JobID:         jobID,
		JobStart:      job.StartTime,
		JobEnd:        job.EndTime,
		TotalDuration: job.DurationSeconds,
		Operators:     timeline,
	})
}

func intQueryParam(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, errors.New("invalid " + name)
	}
	return value, nil
}
