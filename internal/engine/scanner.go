package engine

import (
	"fmt"
	"sort"

	"github.com/endpointops/cachereclaim/internal/cacheindex"
	"github.com/endpointops/cachereclaim/internal/catalog"
	"github.com/sirupsen/logrus"
)

// ApplicationScanner classifies cache content referenced by the
// installed-applications catalog. Eligible deployments are evicted
// immediately; everything else is excluded for the rest of the run.
type ApplicationScanner struct {
	provider catalog.ApplicationProvider
	log      *logrus.Entry
}

func NewApplicationScanner(provider catalog.ApplicationProvider) *ApplicationScanner {
	return &ApplicationScanner{
		provider: provider,
		log:      logrus.WithField("name", "scan-applications"),
	}
}

func (s *ApplicationScanner) Scan(rc *RunContext, ev *Evictor) error {
	apps, err := s.provider.Applications()
	if err != nil {
		return fmt.Errorf("application catalog: %w", err)
	}

	s.log.Debugf("classifying %d application deployment types", len(apps))
	for _, app := range apps {
		if app.Eligible() {
			ev.Delete(rc, app.ContentID, app.Name)
			continue
		}
		if app.ContentID != "" {
			rc.Exclude(app.ContentID)
		}
	}
	return nil
}

// PackageScanner classifies cache content referenced by the run-packages
// catalog. Unlike the other catalogs it batches: a package is deleted only
// after every run record is classified, and exclusion wins over eligibility
// when records for the same package disagree.
type PackageScanner struct {
	provider catalog.PackageProvider
	log      *logrus.Entry
}

func NewPackageScanner(provider catalog.PackageProvider) *PackageScanner {
	return &PackageScanner{
		provider: provider,
		log:      logrus.WithField("name", "scan-packages"),
	}
}

func (s *PackageScanner) Scan(rc *RunContext, ev *Evictor) error {
	pkgs, err := s.provider.Packages()
	if err != nil {
		return fmt.Errorf("package catalog: %w", err)
	}

	s.log.Debugf("classifying %d package run records", len(pkgs))

	eligible := make(map[string]string) // package id -> display name
	excluded := make(map[string]struct{})

	for _, pkg := range pkgs {
		if pkg.Eligible() {
			if _, ok := eligible[pkg.PackageID]; !ok {
				eligible[pkg.PackageID] = pkg.Name
			}
			continue
		}
		excluded[pkg.PackageID] = struct{}{}
		rc.Exclude(pkg.PackageID)
	}

	ids := make([]string, 0, len(eligible))
	for id := range eligible {
		if _, ok := excluded[id]; ok {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		ev.Delete(rc, id, eligible[id])
	}
	return nil
}

// UpdateScanner classifies cache content referenced by the applied-updates
// catalog.
type UpdateScanner struct {
	provider catalog.UpdateProvider
	log      *logrus.Entry
}

func NewUpdateScanner(provider catalog.UpdateProvider) *UpdateScanner {
	return &UpdateScanner{
		provider: provider,
		log:      logrus.WithField("name", "scan-updates"),
	}
}

func (s *UpdateScanner) Scan(rc *RunContext, ev *Evictor) error {
	upds, err := s.provider.Updates()
	if err != nil {
		return fmt.Errorf("update catalog: %w", err)
	}

	s.log.Debugf("classifying %d updates", len(upds))
	for _, upd := range upds {
		if upd.Eligible() {
			ev.Delete(rc, upd.ContentID, upd.Name)
			continue
		}
		if upd.ContentID != "" {
			rc.Exclude(upd.ContentID)
		}
	}
	return nil
}

// OrphanScanner evicts index entries no catalog ever classified: stale rows
// with no matching live deployment record.
type OrphanScanner struct {
	log *logrus.Entry
}

// orphanDisplayName labels orphan evictions in logs and audit rows.
const orphanDisplayName = "Orphaned Cache Item"

func NewOrphanScanner() *OrphanScanner {
	return &OrphanScanner{log: logrus.WithField("name", "scan-orphans")}
}

func (s *OrphanScanner) Scan(rc *RunContext, ev *Evictor, entries []cacheindex.Entry) {
	for _, e := range entries {
		if rc.Excluded(e.ContentID) {
			continue
		}
		s.log.Debugf("index entry %s unclassified by catalogs", e.ContentID)
		ev.Delete(rc, e.ContentID, orphanDisplayName)
	}
}
