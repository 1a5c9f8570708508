package dto

import (
	"github.com/sparkmon/spark-job-monitor/entity"
	"github.com/sparkmon/spark-job-monitor/stats"
)

type PaginationInfo struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// JobView is a job record plus its derived presentation fields.
type JobView struct {
	entity.Job
	DurationFormatted string `json:"duration_formatted"`
}

// OperatorView replaces the serialized dependencies with the parsed list.
type OperatorView struct {
	entity.Operator
	Dependencies      []string `json:"dependencies"`
	DurationFormatted string   `json:"duration_formatted"`
}

type JobsResponse struct {
	Jobs       []JobView      `json:"jobs"`
	Pagination PaginationInfo `json:"pagination"`
}

type JobOperatorsResponse struct {
	JobID     string         `json:"job_id"`
	Operators []OperatorView `json:"operators"`
}

type JobErrorsResponse struct {
	JobID  string            `json:"job_id"`
	Errors []entity.JobError `json:"errors"`
}

type TimelineOperator struct {
	OperatorID       string  `json:"operator_id"`
	OperatorName     string  `json:"operator_name"`
	StartTime        string  `json:"start_time"`
	EndTime          string  `json:"end_time"`
	DurationSeconds  float64 `json:"duration_seconds"`
	Status           string  `json:"status"`
	RecordsProcessed int64   `json:"records_processed"`
}

type JobTimelineResponse struct {
	JobID         string             `json:"job_id"`
	JobStart      string             `json:"job_start"`
	JobEnd        string             `json:"job_end"`
	TotalDuration float64            `json:"total_duration"`
	Operators     []TimelineOperator `json:"operators"`
}

type StatsResponse struct {
	stats.Report
	LastUpdated string `json:"last_updated"`
}

type JobTypesResponse struct {
	JobTypes []string `json:"job_types"`
}

type CacheInfo struct {
	Loaded    bool   `json:"loaded"`
	LoadedAt  string `json:"loaded_at,omitempty"`
	TTLSecs   int    `json:"ttl_seconds"`
	Jobs      int    `json:"jobs"`
	Operators int    `json:"operators"`
	Errors    int    `json:"errors"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp string    `json:"timestamp"`
	Backend   string    `json:"backend"`
	DataDir   string    `json:"dataDir"`
	Cache     CacheInfo `json:"cache"`
}

type RefreshResponse struct {
	Message string `json:"message"`
}
