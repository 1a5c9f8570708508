package entity

const (
	OperatorStatusCompleted = "COMPLETED"
	OperatorStatusFailed    = "FAILED"
	OperatorStatusSkipped   = "SKIPPED"
)

// Dependencies is kept as the raw serialized JSON list; it is parsed on demand
// by the query layer so a malformed value never fails a load.
type Operator struct {
	JobID               string  `json:"job_id" parquet:"job_id" gorm:"column:job_id;index"`
	OperatorID          string  `json:"operator_id" parquet:"operator_id" gorm:"column:operator_id;index"`
	OperatorName        string  `json:"operator_name" parquet:"operator_name" gorm:"column:operator_name"`
	OperatorType        string  `json:"operator_type" parquet:"operator_type" gorm:"column:operator_type"`
	StageID             int64   `json:"stage_id" parquet:"stage_id" gorm:"column:stage_id"`
	Status              string  `json:"status" parquet:"status" gorm:"column:status"`
	StartTime           string  `json:"start_time" parquet:"start_time" gorm:"column:start_time"`
	EndTime             string  `json:"end_time" parquet:"end_time" gorm:"column:end_time"`
	DurationSeconds     float64 `json:"duration_seconds" parquet:"duration_seconds" gorm:"column:duration_seconds"`
	RecordsProcessed    int64   `json:"records_processed" parquet:"records_processed" gorm:"column:records_processed"`
	MemoryUsageMB       float64 `json:"memory_usage_mb" parquet:"memory_usage_mb" gorm:"column:memory_usage_mb"`
	CPUTimeMS           float64 `json:"cpu_time_ms" parquet:"cpu_time_ms" gorm:"column:cpu_time_ms"`
	SpillMemoryMB       float64 `json:"spill_memory_mb" parquet:"spill_memory_mb" gorm:"column:spill_memory_mb"`
	ShuffleReadRecords  int64   `json:"shuffle_read_records" parquet:"shuffle_read_records" gorm:"column:shuffle_read_records"`
	ShuffleWriteRecords int64   `json:"shuffle_write_records" parquet:"shuffle_write_records" gorm:"column:shuffle_write_records"`
	Dependencies        string  `json:"dependencies" parquet:"dependencies" gorm:"column:dependencies"`
}

func (Operator) TableName() string {
	return "spark_operators"
}
