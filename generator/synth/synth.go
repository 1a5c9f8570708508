// Package synth produces the synthetic job, operator and error datasets
// consumed by the monitor. It is an offline tool; its only contract with the
// serving process is the dataset shape.
package synth

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/sparkmon/spark-job-monitor/entity"
)

type Generator struct {
	rng *rand.Rand
	now time.Time
}

func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now(),
	}
}

// Jobs generates numJobs jobs spread over the last seven days.
func (g *Generator) Jobs(numJobs int) []entity.Job {
	jobs := make([]entity.Job, 0, numJobs)
	baseTime := g.now.Add(-7 * 24 * time.Hour)

	// Sorted so the same seed always yields the same corpus.
	jobTypes := make([]string, 0, len(jobProfiles))
	for name := range jobProfiles {
		jobTypes = append(jobTypes, name)
	}
	sort.Strings(jobTypes)

	for i := 0; i < numJobs; i++ {
		jobType := jobTypes[g.rng.Intn(len(jobTypes))]
		profile := jobProfiles[jobType]

		startTime := baseTime.Add(time.Duration(g.rng.Intn(7*24*3600)) * time.Second)

		duration := g.normal(profile.avgDuration, profile.avgDuration*0.3)
		if duration < 30 {
			duration = 30
		}
		duration = float64(int(duration))

		failed := g.rng.Float64() < profile.failureRate
		status := entity.JobStatusCompleted
		if failed {
			// Failed jobs typically run shorter.
			duration = float64(int(duration * g.uniform(0.1, 0.8)))
			status = entity.JobStatusFailed
		}
		endTime := startTime.Add(time.Duration(duration) * time.Second)

		numExecutors := pick(g.rng, []int64{2, 4, 8, 16, 32})
		numStages := int64(len(profile.operators))
		numTasks := numStages * numExecutors * int64(g.rng.Intn(4)+1)

		inputSize := g.uniform(10, 10000)
		outputSize := 0.0
		if !failed {
			outputSize = inputSize * g.uniform(0.3, 1.2)
		}

		memoryPerExecutor := pick(g.rng, []int64{1024, 2048, 4096, 8192})

		gcTime := int64(g.rng.Intn(49001) + 1000)
		if failed {
			gcTime = int64(g.rng.Intn(4501) + 500)
		}

		jobs = append(jobs, entity.Job{
			JobID:               fmt.Sprintf("application_%s_%06d", g.now.Format("20060102_150405"), i+1),
			JobName:             fmt.Sprintf("%s_%03d", jobType, i+1),
			JobType:             jobType,
			Status:              status,
			StartTime:           startTime.Format(time.RFC3339),
			EndTime:             endTime.Format(time.RFC3339),
			DurationSeconds:     duration,
			NumStages:           numStages,
			NumTasks:            numTasks,
			NumExecutors:        numExecutors,
			InputSizeMB:         round2(inputSize),
			OutputSizeMB:        round2(outputSize),
			MemoryPerExecutorMB: memoryPerExecutor,
			TotalMemoryMB:       memoryPerExecutor * numExecutors,
			CPUCoresPerExecutor: pick(g.rng, []int64{2, 4, 8}),
			ShuffleReadMB:       round2(g.uniform(0, inputSize*0.5)),
			ShuffleWriteMB:      round2(g.uniform(0, inputSize*0.3)),
			GCTimeMS:            gcTime,
		})
	}

	return jobs
}

// Operators generates the per-stage operator records for every job, spreading
// the job duration over its operator chain by weight.
func (g *Generator) Operators(jobs []entity.Job) []entity.Operator {
	operators := make([]entity.Operator, 0, len(jobs)*5)

	for _, job := range jobs {
		profile := jobProfiles[job.JobType]
		failed := job.Status == entity.JobStatusFailed
		jobStart := parseOrZero(job.StartTime)

		totalWeight := 0.0
		for _, name := range profile.operators {
			totalWeight += weightOf(name)
		}

		cumulative := 0.0
		for i, name := range profile.operators {
			baseDuration := weightOf(name) / totalWeight * job.DurationSeconds
			duration := g.normal(baseDuration, baseDuration*0.2)
			if duration < 5 {
				duration = 5
			}
			duration = float64(int(duration))

			status := entity.OperatorStatusCompleted
			// Later operators of a failed job may themselves fail or never run.
			if failed && i >= len(profile.operators)/2 {
				switch r := g.rng.Float64(); {
				case r < 0.3:
					status = entity.OperatorStatusFailed
					duration = float64(int(duration * g.uniform(0.1, 0.5)))
				case g.rng.Float64() < 0.5:
					status = entity.OperatorStatusSkipped
					duration = 0
				}
			}

			opStart := jobStart.Add(time.Duration(cumulative) * time.Second)
			opEnd := opStart.Add(time.Duration(duration) * time.Second)
			cumulative += duration

			recordsProcessed := int64(0)
			if status == entity.OperatorStatusCompleted {
				recordsProcessed = int64(g.rng.Intn(999001) + 1000)
			}
			memoryUsage := g.uniform(100, float64(job.MemoryPerExecutorMB)*0.8)

			operators = append(operators, entity.Operator{
				JobID:               job.JobID,
				OperatorID:          fmt.Sprintf("%s_op_%02d", job.JobID, i),
				OperatorName:        name,
				OperatorType:        name,
				StageID:             int64(i),
				Status:              status,
				StartTime:           opStart.Format(time.RFC3339),
				EndTime:             opEnd.Format(time.RFC3339),
				DurationSeconds:     duration,
				RecordsProcessed:    recordsProcessed,
				MemoryUsageMB:       round2(memoryUsage),
				CPUTimeMS:           duration * 1000 * g.uniform(0.3, 0.9),
				SpillMemoryMB:       round2(g.uniform(0, memoryUsage*0.2)),
				ShuffleReadRecords:  g.intn(recordsProcessed / 2),
				ShuffleWriteRecords: g.intn(recordsProcessed / 3),
				Dependencies:        dependenciesJSON(job.JobID, i),
			})
		}
	}

	return operators
}

// Errors generates job-level failures, operator-level failures and a sprinkle
// of warnings on successful jobs.
func (g *Generator) Errors(jobs []entity.Job, operators []entity.Operator) []entity.JobError {
	jobErrors := make([]entity.JobError, 0)

	for _, job := range jobs {
		if job.Status != entity.JobStatusFailed {
			continue
		}
		trace := stackTraces[g.rng.Intn(len(stackTraces))]
		jobErrors = append(jobErrors, entity.JobError{
			JobID:          job.JobID,
			ErrorType:      entity.ErrorTypeJobFailure,
			ErrorMessage:   errorMessages[g.rng.Intn(len(errorMessages))],
			ErrorTimestamp: job.EndTime,
			StackTrace:     &trace,
			RetryCount:     int64(g.rng.Intn(4)),
			IsRecoverable:  g.rng.Float64() < 0.5,
		})
	}

	for _, op := range operators {
		if op.Status != entity.OperatorStatusFailed {
			continue
		}
		operatorID := op.OperatorID
		trace := stackTraces[g.rng.Intn(len(stackTraces))]
		jobErrors = append(jobErrors, entity.JobError{
			JobID:          op.JobID,
			OperatorID:     &operatorID,
			ErrorType:      entity.ErrorTypeOperatorFailure,
			ErrorMessage:   errorMessages[g.rng.Intn(len(errorMessages))],
			ErrorTimestamp: op.EndTime,
			StackTrace:     &trace,
			RetryCount:     int64(g.rng.Intn(3)),
			IsRecoverable:  g.rng.Float64() < 0.5,
		})
	}

	warned := 0
	for _, job := range jobs {
		if warned >= 20 {
			break
		}
		if job.Status != entity.JobStatusCompleted || job.DurationSeconds <= 60 {
			continue
		}
		if g.rng.Float64() >= 0.3 {
			continue
		}
		offset := g.rng.Intn(int(job.DurationSeconds)-60) + 30
		ts := parseOrZero(job.StartTime).Add(time.Duration(offset) * time.Second)
		jobErrors = append(jobErrors, entity.JobError{
			JobID:          job.JobID,
			ErrorType:      entity.ErrorTypeWarning,
			ErrorMessage:   "High memory usage detected",
			ErrorTimestamp: ts.Format(time.RFC3339),
			RetryCount:     0,
			IsRecoverable:  true,
		})
		warned++
	}

	return jobErrors
}

// Summary builds the single-row stats table describing the generated corpus.
func (g *Generator) Summary(jobs []entity.Job, operators []entity.Operator, jobErrors []entity.JobError) entity.SummaryStats {
	var completed, failed int64
	var totalDuration, totalInput float64
	jobTypes := make(map[string]int64)

	for _, job := range jobs {
		switch job.Status {
		case entity.JobStatusCompleted:
			completed++
		case entity.JobStatusFailed:
			failed++
		}
		totalDuration += job.DurationSeconds
		totalInput += job.InputSizeMB
		jobTypes[job.JobType]++
	}

	avgDuration := 0.0
	if len(jobs) > 0 {
		avgDuration = totalDuration / float64(len(jobs))
	}

	typesJSON, err := json.Marshal(jobTypes)
	if err != nil {
		typesJSON = []byte("{}")
	}

	return entity.SummaryStats{
		TotalJobs:            int64(len(jobs)),
		CompletedJobs:        completed,
		FailedJobs:           failed,
		TotalOperators:       int64(len(operators)),
		TotalErrors:          int64(len(jobErrors)),
		AvgJobDuration:       avgDuration,
		TotalDataProcessedMB: totalInput,
		JobTypes:             string(typesJSON),
		GenerationTimestamp:  g.now.Format(time.RFC3339),
	}
}

func (g *Generator) normal(mean, stddev float64) float64 {
	return g.rng.NormFloat64()*stddev + mean
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *Generator) intn(n int64) int64 {
	if n <= 0 {
		return 0
	}
	return g.rng.Int63n(n)
}

func weightOf(operator string) float64 {
	if w, ok := operatorWeights[operator]; ok {
		return w
	}
	return defaultOperatorWeight
}

// dependenciesJSON links each operator to up to two preceding stages.
func dependenciesJSON(jobID string, stage int) string {
	if stage == 0 {
		return "[]"
	}
	from := stage - 2
	if from < 0 {
		from = 0
	}
	deps := make([]string, 0, 2)
	for j := from; j < stage; j++ {
		deps = append(deps, fmt.Sprintf("%s_op_%02d", jobID, j))
	}
	data, err := json.Marshal(deps)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func parseOrZero(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

func pick(rng *rand.Rand, choices []int64) int64 {
	return choices[rng.Intn(len(choices))]
}
