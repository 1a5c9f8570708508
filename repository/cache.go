package repository

import (
	"context"
	"sync"
	"time"

	"github.com/sparkmon/spark-job-monitor/entity"
)

// SnapshotCache holds the current snapshot and refreshes it through the
// DatasetSource when it is stale. The mutex serializes refreshes, so readers
// only ever see a fully replaced snapshot. A failed reload leaves the previous
// snapshot in place.
type SnapshotCache struct {
	source DatasetSource
	ttl    time.Duration
	now    func() time.Time

	mu   sync.Mutex
	snap *entity.Snapshot
}

func NewSnapshotCache(source DatasetSource, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		source: source,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Get returns a fresh snapshot, reloading all four datasets when forced, when
// nothing has been loaded yet, or when the held snapshot has outlived the TTL.
func (c *SnapshotCache) Get(ctx context.Context, forceRefresh bool) (*entity.Snapshot, error) {
	entered := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snap != nil {
		if forceRefresh {
			// A refresh that completed while this caller waited on the lock
			// satisfies the force; concurrent forced calls coalesce into one
			// actual load.
			if c.snap.LoadedAt.After(entered) {
				return c.snap, nil
			}
		} else if c.now().Sub(c.snap.LoadedAt) < c.ttl {
			return c.snap, nil
		}
	}

	snap, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	c.snap = snap
	return snap, nil
}

// Current returns the held snapshot without triggering a reload. It may be nil.
func (c *SnapshotCache) Current() *entity.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

func (c *SnapshotCache) TTL() time.Duration {
	return c.ttl
}

func (c *SnapshotCache) load(ctx context.Context) (*entity.Snapshot, error) {
	jobs, err := c.source.LoadJobs(ctx)
	if err != nil {
		return nil, err
	}
	operators, err := c.source.LoadOperators(ctx)
	if err != nil {
		return nil, err
	}
	jobErrors, err := c.source.LoadErrors(ctx)
	if err != nil {
		return nil, err
	}
	summary, err := c.source.LoadSummary(ctx)
	if err != nil {
		return nil, err
	}

	return &entity.Snapshot{
		Jobs:      jobs,
		Operators: operators,
		Errors:    jobErrors,
		Summary:   summary,
		LoadedAt:  c.now(),
	}, nil
}
