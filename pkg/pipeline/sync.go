package pipeline

import (
	"context"
	"time"

	"github.com/joffroy59/icoforge/pkg/commitmsg"
)

// SyncAll stages, commits, and pushes every configured sync target.
// Every target is attempted regardless of earlier failures; each
// outcome lands in its own report.
func (d *Driver) SyncAll(ctx context.Context, message string) []SyncReport {
	targets := d.cfg.SyncDirs()
	reports := make([]SyncReport, 0, len(targets))
	for _, dir := range targets {
		reports = append(reports, d.syncOne(ctx, dir, message))
	}
	return reports
}

// syncOne synchronizes a single repository. An empty message is
// synthesized from the staged status; a clean tree short-circuits
// before committing.
func (d *Driver) syncOne(ctx context.Context, dir, message string) SyncReport {
	report := SyncReport{Dir: dir}
	d.logger.Info("starting sync", "dir", dir)

	repo, err := d.openRepo(ctx, dir)
	if err != nil {
		report.Err = NewSyncError(dir, "open", err)
		return report
	}

	if err := repo.StageAll(ctx); err != nil {
		report.Err = NewSyncError(dir, "stage", err)
		return report
	}

	status, err := repo.WorkingTreeStatus(ctx)
	if err != nil {
		report.Err = NewSyncError(dir, "status", err)
		return report
	}
	if status.IsClean() {
		report.Clean = true
		d.logger.Info("no changes to commit", "dir", dir)
		return report
	}

	if message == "" {
		message = commitmsg.FromStatus(status, time.Now())
	}
	report.Message = message

	if err := repo.Commit(ctx, message); err != nil {
		report.Err = NewSyncError(dir, "commit", err)
		return report
	}
	if err := repo.Push(ctx); err != nil {
		report.Err = NewSyncError(dir, "push", err)
		return report
	}

	report.Synced = true
	d.logger.Info("pushed changes", "dir", dir, "message", message)
	return report
}
