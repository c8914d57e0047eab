package scheduler

import (
	"context"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/service"
)

// Refresher reloads a cached snapshot.
type Refresher interface {
	Refresh(ctx context.Context) (service.LoadedSnapshot, error)
}

// SnapshotRefreshJob reloads the dashboard snapshot so reads after an
// out-of-band database change do not serve stale figures.
type SnapshotRefreshJob struct {
	snapshots Refresher
}

// NewSnapshotRefreshJob creates the refresh job for snapshots.
func NewSnapshotRefreshJob(snapshots Refresher) *SnapshotRefreshJob {
	return &SnapshotRefreshJob{snapshots: snapshots}
}

func (j *SnapshotRefreshJob) Name() string { return "snapshot_refresh" }

func (j *SnapshotRefreshJob) Run(ctx context.Context) error {
	_, err := j.snapshots.Refresh(ctx)
	return err
}
