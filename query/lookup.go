package query

import (
	"errors"

	"github.com/sparkmon/spark-job-monitor/entity"
)

// ErrNotFound distinguishes a missing entity from a data-source fault so the
// adapter layer can map the two to different responses.
var ErrNotFound = errors.New("not found")

// JobByID returns the first job carrying the id; ids are expected to be
// unique, duplicates resolve to the first in load order.
func JobByID(jobs []entity.Job, jobID string) (entity.Job, error) {
	for _, job := range jobs {
		if job.JobID == jobID {
			return job, nil
		}
	}
	return entity.Job{}, ErrNotFound
}
