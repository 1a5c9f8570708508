package entity

import "time"

// Snapshot is the atomic unit of cached state: all four datasets from one load
// cycle. A refresh replaces the whole snapshot, never a subset. Readers share
// the snapshot and must treat it as immutable.
type Snapshot struct {
	Jobs      []Job
	Operators []Operator
	Errors    []JobError
	Summary   *SummaryStats
	LoadedAt  time.Time
}
