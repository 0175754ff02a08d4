// Package engine implements the cache reconciliation batch: the loaded
// cache index is classified against the application, package, and update
// catalogs, unreferenced and orphaned content is evicted through the
// cache-manager primitive, severed on-disk folders are removed, and the
// outcomes are aggregated into a run summary. Stages run strictly in
// sequence, each completing before the next starts.
package engine

import (
	"time"

	"github.com/endpointops/cachereclaim/internal/cacheindex"
	"github.com/endpointops/cachereclaim/internal/catalog"
	"github.com/endpointops/cachereclaim/internal/config"
	"github.com/sirupsen/logrus"
)

// Options configures a reconciliation run.
type Options struct {
	CacheRoot string
	Policy    string // config.PolicyFailOpen or config.PolicyFailFast
	DryRun    bool
	Now       func() time.Time // defaults to time.Now
}

// Engine drives one reconciliation run.
type Engine struct {
	index    cacheindex.Provider
	catalogs catalog.Providers
	manager  cacheindex.Manager
	opts     Options
	log      *logrus.Entry
}

// New creates an engine over the given providers and manager.
func New(index cacheindex.Provider, catalogs catalog.Providers, manager cacheindex.Manager, opts Options) *Engine {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Policy == "" {
		opts.Policy = config.PolicyFailOpen
	}

	return &Engine{
		index:    index,
		catalogs: catalogs,
		manager:  manager,
		opts:     opts,
		log:      logrus.WithField("name", "engine"),
	}
}

type scanner interface {
	Scan(rc *RunContext, ev *Evictor) error
}

// Run executes the full reconciliation sequence and returns its summary.
// Under fail-open, provider failures degrade to empty result sets; under
// fail-fast the first provider failure aborts the run.
func (e *Engine) Run() (Summary, error) {
	failFast := e.opts.Policy == config.PolicyFailFast
	e.log.Infof("starting reconciliation (policy=%s, dry-run=%v)", e.opts.Policy, e.opts.DryRun)

	entries, err := e.index.Entries()
	if err != nil {
		if failFast {
			return Summary{}, err
		}
		// Degraded mode: no index entries means no evictions, but the run
		// still completes and reports.
		e.log.Warnf("cache index unavailable, continuing with empty index: %v", err)
		entries = nil
	}
	e.log.Infof("loaded %d non-persisted cache entries", len(entries))

	rc := NewRunContext()
	ev := NewEvictor(entries, e.manager, e.opts.DryRun)

	scanners := []scanner{
		NewApplicationScanner(e.catalogs.Applications),
		NewPackageScanner(e.catalogs.Packages),
		NewUpdateScanner(e.catalogs.Updates),
	}
	for _, s := range scanners {
		if err := s.Scan(rc, ev); err != nil {
			if failFast {
				return Summary{}, err
			}
			e.log.Warnf("catalog unavailable, treating as empty: %v", err)
		}
	}

	NewOrphanScanner().Scan(rc, ev, entries)

	severed := NewSeveredScanner(e.opts.CacheRoot, e.index, e.opts.DryRun)
	if err := severed.Scan(rc); err != nil {
		if failFast {
			return Summary{}, err
		}
		e.log.Warnf("severed-folder scan skipped: %v", err)
	}

	summary := BuildSummary(rc, e.opts.Now(), e.opts.Policy)
	e.log.Infof("reconciliation done: %d deleted, %d failed, %d severed folders, reclaimed MB: %s",
		summary.Deleted(), summary.Failed(), len(summary.Severed), summary.Total)
	return summary, nil
}
