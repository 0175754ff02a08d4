package engine

import (
	"github.com/endpointops/cachereclaim/internal/cacheindex"
	"github.com/endpointops/cachereclaim/internal/fsops"
	"github.com/endpointops/cachereclaim/pkg/size"
	"github.com/sirupsen/logrus"
)

// Evictor removes single cache items through the cache-manager primitive.
// It holds the in-run view of the index: once an item is evicted it leaves
// the view, so a later Delete for the same content id is a no-op.
type Evictor struct {
	entries map[string]cacheindex.Entry
	manager cacheindex.Manager
	dryRun  bool
	log     *logrus.Entry
}

// NewEvictor creates an evictor over the loaded index entries.
func NewEvictor(entries []cacheindex.Entry, manager cacheindex.Manager, dryRun bool) *Evictor {
	view := make(map[string]cacheindex.Entry, len(entries))
	for _, e := range entries {
		view[e.ContentID] = e
	}

	return &Evictor{
		entries: view,
		manager: manager,
		dryRun:  dryRun,
		log:     logrus.WithField("name", "evictor"),
	}
}

// Delete evicts the cache item for contentID, recording the outcome in rc.
//
// An item no longer in the in-run index view is logged and skipped: either
// it never was cached or an earlier stage already evicted it. An item whose
// folder holds zero bytes is skipped without a record or a manager call,
// matching long-observed behavior of the cache (the entry stays indexed);
// the skip is logged so it is visible in run output.
func (ev *Evictor) Delete(rc *RunContext, contentID, displayName string) {
	entry, ok := ev.entries[contentID]
	if !ok {
		ev.log.Infof("%s (%s): already deleted", displayName, contentID)
		return
	}

	scan, err := fsops.TreeSize(entry.Location)
	if err != nil {
		rc.Warn(fsops.ClassifyError(entry.Location, err))
		return
	}
	rc.Warn(scan.Warnings...)

	if scan.Size == 0 {
		ev.log.Warnf("%s (%s): zero bytes on disk, leaving indexed and unreported", displayName, contentID)
		return
	}

	record := Record{
		Name:     displayName,
		ID:       contentID,
		Location: entry.Location,
		SizeMB:   size.MB(scan.Size),
		Status:   StatusDeleted,
	}

	// One attempt per item per run, success or not.
	delete(ev.entries, contentID)

	if ev.dryRun {
		ev.log.Infof("%s (%s): would delete %s", displayName, contentID, size.FormatSize(scan.Size))
		rc.Records = append(rc.Records, record)
		return
	}

	if err := ev.evict(contentID); err != nil {
		ev.log.Errorf("%s (%s): eviction failed: %v", displayName, contentID, err)
		record.Status = StatusFailed
	} else {
		ev.log.Infof("%s (%s): deleted %s", displayName, contentID, size.FormatSize(scan.Size))
	}

	rc.Records = append(rc.Records, record)
}

func (ev *Evictor) evict(contentID string) error {
	elements, err := ev.manager.Enumerate(contentID)
	if err != nil {
		return err
	}

	for _, el := range elements {
		if err := ev.manager.Delete(el); err != nil {
			return err
		}
	}
	return nil
}
