package entity

const (
	ErrorTypeJobFailure      = "JOB_FAILURE"
	ErrorTypeOperatorFailure = "OPERATOR_FAILURE"
	ErrorTypeWarning         = "WARNING"
)

// JobError is an error or warning record attached to a job and optionally to
// one of its operators. OperatorID and StackTrace are nullable.
type JobError struct {
	JobID          string  `json:"job_id" parquet:"job_id" gorm:"column:job_id;index"`
	OperatorID     *string `json:"operator_id" parquet:"operator_id,optional" gorm:"column:operator_id"`
	ErrorType      string  `json:"error_type" parquet:"error_type" gorm:"column:error_type;index"`
	ErrorMessage   string  `json:"error_message" parquet:"error_message" gorm:"column:error_message"`
	ErrorTimestamp string  `json:"error_timestamp" parquet:"error_timestamp" gorm:"column:error_timestamp"`
	StackTrace     *string `json:"stack_trace" parquet:"stack_trace,optional" gorm:"column:stack_trace;type:text"`
	RetryCount     int64   `json:"retry_count" parquet:"retry_count" gorm:"column:retry_count"`
	IsRecoverable  bool    `json:"is_recoverable" parquet:"is_recoverable" gorm:"column:is_recoverable"`
}

func (JobError) TableName() string {
	return "spark_errors"
}
