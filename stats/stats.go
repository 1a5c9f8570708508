// Package stats reduces a snapshot to summary statistics. Nothing here is
// cached; every call recomputes from the snapshot it is given.
package stats

import (
	"math"
	"time"

	"github.com/sparkmon/spark-job-monitor/entity"
	"github.com/sparkmon/spark-job-monitor/query"
)

type Overview struct {
	TotalJobs     int     `json:"total_jobs"`
	CompletedJobs int     `json:"completed_jobs"`
	FailedJobs    int     `json:"failed_jobs"`
	RunningJobs   int     `json:"running_jobs"`
	SuccessRate   float64 `json:"success_rate"`
}

type Performance struct {
	AvgDurationSeconds   float64 `json:"avg_duration_seconds"`
	AvgDurationFormatted string  `json:"avg_duration_formatted"`
	TotalDataProcessedMB float64 `json:"total_data_processed_mb"`
	TotalDataProcessedGB float64 `json:"total_data_processed_gb"`
}

type RecentActivity struct {
	JobsLast24h     int `json:"jobs_last_24h"`
	FailuresLast24h int `json:"failures_last_24h"`
}

type ErrorCounts struct {
	TotalErrors   int `json:"total_errors"`
	TotalWarnings int `json:"total_warnings"`
}

type Report struct {
	Overview       Overview       `json:"overview"`
	Performance    Performance    `json:"performance"`
	JobTypes       map[string]int `json:"job_types"`
	RecentActivity RecentActivity `json:"recent_activity"`
	Errors         ErrorCounts    `json:"errors"`
}

// Compute aggregates the snapshot. All degenerate cases (no jobs, zero
// divisors) normalize to 0.
func Compute(snap *entity.Snapshot, now time.Time) Report {
	var report Report
	report.JobTypes = make(map[string]int)

	var totalDuration float64
	var totalInputMB float64
	cutoff := now.Add(-24 * time.Hour)

	for _, job := range snap.Jobs {
		report.Overview.TotalJobs++
		switch job.Status {
		case entity.JobStatusCompleted:
			report.Overview.CompletedJobs++
		case entity.JobStatusFailed:
			report.Overview.FailedJobs++
		case entity.JobStatusRunning:
			report.Overview.RunningJobs++
		}

		if job.JobType != "" {
			report.JobTypes[job.JobType]++
		}

		totalDuration += job.DurationSeconds
		totalInputMB += job.InputSizeMB

		if query.ParseTime(job.StartTime).After(cutoff) {
			report.RecentActivity.JobsLast24h++
			if job.Status == entity.JobStatusFailed {
				report.RecentActivity.FailuresLast24h++
			}
		}
	}

	if report.Overview.TotalJobs > 0 {
		rate := float64(report.Overview.CompletedJobs) / float64(report.Overview.TotalJobs) * 100
		report.Overview.SuccessRate = math.Round(rate*10) / 10
	}

	var avgDuration float64
	if report.Overview.TotalJobs > 0 {
		avgDuration = math.Round(totalDuration / float64(report.Overview.TotalJobs))
	}
	report.Performance.AvgDurationSeconds = avgDuration
	report.Performance.AvgDurationFormatted = query.FormatDuration(avgDuration)
	report.Performance.TotalDataProcessedMB = math.Round(totalInputMB)
	report.Performance.TotalDataProcessedGB = math.Round(totalInputMB/1024*100) / 100

	for _, e := range snap.Errors {
		if e.ErrorType == entity.ErrorTypeWarning {
			report.Errors.TotalWarnings++
		} else {
			report.Errors.TotalErrors++
		}
	}

	return report
}
