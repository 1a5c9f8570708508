package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkmon/spark-job-monitor/config"
	"github.com/sparkmon/spark-job-monitor/entity"
	"github.com/sparkmon/spark-job-monitor/http/controller"
	routes "github.com/sparkmon/spark-job-monitor/http/route"
	"github.com/sparkmon/spark-job-monitor/infra"
	"github.com/sparkmon/spark-job-monitor/repository"
)

type fixtureSource struct {
	jobs      []entity.Job
	operators []entity.Operator
	errors    []entity.JobError
}

func (s *fixtureSource) LoadJobs(ctx context.Context) ([]entity.Job, error) {
	return s.jobs, nil
}

func (s *fixtureSource) LoadOperators(ctx context.Context) ([]entity.Operator, error) {
	return s.operators, nil
}

func (s *fixtureSource) LoadErrors(ctx context.Context) ([]entity.JobError, error) {
	return s.errors, nil
}

func (s *fixtureSource) LoadSummary(ctx context.Context) (*entity.SummaryStats, error) {
	return nil, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	operatorID := "app_1_op_00"
	source := &fixtureSource{
		jobs: []entity.Job{
			{
				JobID: "app_1", JobName: "etl_001", JobType: "ETL_Pipeline",
				Status: entity.JobStatusCompleted, StartTime: "2026-08-20T10:00:00Z",
				EndTime: "2026-08-20T10:05:00Z", DurationSeconds: 300,
			},
			{
				JobID: "app_2", JobName: "ml_001", JobType: "ML_Training",
				Status: entity.JobStatusFailed, StartTime: "2026-08-21T09:00:00Z",
				EndTime: "2026-08-21T09:10:00Z", DurationSeconds: 600,
			},
			{
				JobID: "app_3", JobName: "etl_002", JobType: "ETL_Pipeline",
				Status: entity.JobStatusCompleted, StartTime: "2026-08-19T08:00:00Z",
				EndTime: "2026-08-19T08:02:00Z", DurationSeconds: 120,
			},
		},
		operators: []entity.Operator{
			{
				JobID: "app_1", OperatorID: operatorID, OperatorName: "ReadCSV",
				StageID: 1, StartTime: "2026-08-20T10:01:00Z",
				Status: entity.OperatorStatusCompleted, Dependencies: `["x"]`,
			},
			{
				JobID: "app_1", OperatorID: "app_1_op_01", OperatorName: "Filter",
				StageID: 0, StartTime: "2026-08-20T10:00:00Z",
				Status: entity.OperatorStatusCompleted, Dependencies: "[]",
			},
		},
		errors: []entity.JobError{
			{JobID: "app_2", ErrorType: entity.ErrorTypeJobFailure, ErrorMessage: "boom"},
		},
	}

	cfg := &config.Config{EnvConfig: config.LoadEnvConfig()}
	inf := &infra.Infra{Logger: infra.InitLoggerClient(cfg.EnvConfig)}
	repo := &repository.Repository{
		Source: source,
		Cache:  repository.NewSnapshotCache(source, 5*time.Minute),
	}

	ctrl := controller.NewController(cfg, inf, repo)
	return routes.SetupRouter(ctrl)
}

func doRequest(t *testing.T, router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestListJobs(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/jobs")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	jobs := body["jobs"].([]interface{})
	require.Len(t, jobs, 3)

	// Default ordering is start_time descending.
	first := jobs[0].(map[string]interface{})
	assert.Equal(t, "app_2", first["job_id"])
	assert.Equal(t, "10m 0s", first["duration_formatted"])

	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(3), pagination["total"])
	assert.Equal(t, false, pagination["has_more"])
}

func TestListJobsFiltering(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/jobs?status=FAILED")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	jobs := body["jobs"].([]interface{})
	require.Len(t, jobs, 1)
	assert.Equal(t, "app_2", jobs[0].(map[string]interface{})["job_id"])

	rec = doRequest(t, router, http.MethodGet, "/api/jobs?job_type=ETL_Pipeline&status=COMPLETED")
	body = decode(t, rec)
	assert.Len(t, body["jobs"].([]interface{}), 2)
}

func TestListJobsPagination(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/jobs?limit=2&offset=0")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Len(t, body["jobs"].([]interface{}), 2)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, true, pagination["has_more"])

	rec = doRequest(t, router, http.MethodGet, "/api/jobs?limit=2&offset=2")
	body = decode(t, rec)
	assert.Len(t, body["jobs"].([]interface{}), 1)
	assert.Equal(t, false, body["pagination"].(map[string]interface{})["has_more"])
}

func TestListJobsInvalidParams(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/jobs?limit=abc",
		"/api/jobs?limit=-1",
		"/api/jobs?offset=abc",
		"/api/jobs?offset=-5",
	} {
		rec := doRequest(t, router, http.MethodGet, path)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestGetJob(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/jobs/app_1")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "app_1", body["job_id"])
	assert.Equal(t, "5m 0s", body["duration_formatted"])

	rec = doRequest(t, router, http.MethodGet, "/api/jobs/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetJobOperators(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/jobs/app_1/operators")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	operators := body["operators"].([]interface{})
	require.Len(t, operators, 2)

	// Ordered by stage, dependencies parsed into lists.
	first := operators[0].(map[string]interface{})
	assert.Equal(t, "app_1_op_01", first["operator_id"])
	assert.Equal(t, []interface{}{}, first["dependencies"])
	second := operators[1].(map[string]interface{})
	assert.Equal(t, []interface{}{"x"}, second["dependencies"])

	// A job without operators reports not found even though the job exists.
	rec = doRequest(t, router, http.MethodGet, "/api/jobs/app_2/operators")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetJobErrors(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/jobs/app_2/errors")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	require.Len(t, body["errors"].([]interface{}), 1)

	// Unlike operators, a job without errors yields an empty list.
	rec = doRequest(t, router, http.MethodGet, "/api/jobs/app_1/errors")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	assert.Empty(t, body["errors"].([]interface{}))
}

func TestGetJobTimeline(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/jobs/app_1/timeline")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "2026-08-20T10:00:00Z", body["job_start"])

	operators := body["operators"].([]interface{})
	require.Len(t, operators, 2)
	// Timeline orders by operator start time, not stage.
	assert.Equal(t, "app_1_op_01", operators[0].(map[string]interface{})["operator_id"])

	rec = doRequest(t, router, http.MethodGet, "/api/jobs/nope/timeline")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetStats(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)

	overview := body["overview"].(map[string]interface{})
	assert.Equal(t, float64(3), overview["total_jobs"])
	assert.Equal(t, float64(2), overview["completed_jobs"])
	assert.Equal(t, 66.7, overview["success_rate"])
	assert.NotEmpty(t, body["last_updated"])
}

func TestGetJobTypes(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/job-types")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, []interface{}{"ETL_Pipeline", "ML_Training"},
		body["job_types"].([]interface{}))
}

func TestHealthAndRefresh(t *testing.T) {
	router := newTestRouter(t)

	// Health before any load reports an unloaded cache.
	rec := doRequest(t, router, http.MethodGet, "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "healthy", body["status"])
	cache := body["cache"].(map[string]interface{})
	assert.Equal(t, false, cache["loaded"])

	rec = doRequest(t, router, http.MethodPost, "/api/refresh")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/health")
	body = decode(t, rec)
	cache = body["cache"].(map[string]interface{})
	assert.Equal(t, true, cache["loaded"])
	assert.Equal(t, float64(3), cache["jobs"])
}
