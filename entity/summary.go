package entity

// SummaryStats is the single-row table written by the generator alongside the
// datasets. JobTypes holds a JSON-serialized map of job type to count.
type SummaryStats struct {
	TotalJobs            int64   `json:"total_jobs" parquet:"total_jobs" gorm:"column:total_jobs"`
	CompletedJobs        int64   `json:"completed_jobs" parquet:"completed_jobs" gorm:"column:completed_jobs"`
	FailedJobs           int64   `json:"failed_jobs" parquet:"failed_jobs" gorm:"column:failed_jobs"`
	TotalOperators       int64   `json:"total_operators" parquet:"total_operators" gorm:"column:total_operators"`
	TotalErrors          int64   `json:"total_errors" parquet:"total_errors" gorm:"column:total_errors"`
	AvgJobDuration       float64 `json:"avg_job_duration" parquet:"avg_job_duration" gorm:"column:avg_job_duration"`
	TotalDataProcessedMB float64 `json:"total_data_processed_mb" parquet:"total_data_processed_mb" gorm:"column:total_data_processed_mb"`
	JobTypes             string  `json:"job_types" parquet:"job_types" gorm:"column:job_types"`
	GenerationTimestamp  string  `json:"generation_timestamp" parquet:"generation_timestamp" gorm:"column:generation_timestamp"`
}

func (SummaryStats) TableName() string {
	return "summary_stats"
}
