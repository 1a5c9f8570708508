package entity

const (
	JobStatusCompleted = "COMPLETED"
	JobStatusFailed    = "FAILED"
	JobStatusRunning   = "RUNNING"
)

type Job struct {
	JobID               string  `json:"job_id" parquet:"job_id" gorm:"column:job_id;index"`
	JobName             string  `json:"job_name" parquet:"job_name" gorm:"column:job_name"`
	JobType             string  `json:"job_type" parquet:"job_type" gorm:"column:job_type;index"`
	Status              string  `json:"status" parquet:"status" gorm:"column:status;index"`
	StartTime           string  `json:"start_time" parquet:"start_time" gorm:"column:start_time"`
	EndTime             string  `json:"end_time" parquet:"end_time" gorm:"column:end_time"`
	DurationSeconds     float64 `json:"duration_seconds" parquet:"duration_seconds" gorm:"column:duration_seconds"`
	NumStages           int64   `json:"num_stages" parquet:"num_stages" gorm:"column:num_stages"`
	NumTasks            int64   `json:"num_tasks" parquet:"num_tasks" gorm:"column:num_tasks"`
	NumExecutors        int64   `json:"num_executors" parquet:"num_executors" gorm:"column:num_executors"`
	InputSizeMB         float64 `json:"input_size_mb" parquet:"input_size_mb" gorm:"column:input_size_mb"`
	OutputSizeMB        float64 `json:"output_size_mb" parquet:"output_size_mb" gorm:"column:output_size_mb"`
	MemoryPerExecutorMB int64   `json:"memory_per_executor_mb" parquet:"memory_per_executor_mb" gorm:"column:memory_per_executor_mb"`
	TotalMemoryMB       int64   `json:"total_memory_mb" parquet:"total_memory_mb" gorm:"column:total_memory_mb"`
	CPUCoresPerExecutor int64   `json:"cpu_cores_per_executor" parquet:"cpu_cores_per_executor" gorm:"column:cpu_cores_per_executor"`
	ShuffleReadMB       float64 `json:"shuffle_read_mb" parquet:"shuffle_read_mb" gorm:"column:shuffle_read_mb"`
	ShuffleWriteMB      float64 `json:"shuffle_write_mb" parquet:"shuffle_write_mb" gorm:"column:shuffle_write_mb"`
	GCTimeMS            int64   `json:"gc_time_ms" parquet:"gc_time_ms" gorm:"column:gc_time_ms"`
}

func (Job) TableName() string {
	return "spark_jobs"
}
