package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/endpointops/cachereclaim/internal/cacheindex"
	"github.com/endpointops/cachereclaim/internal/fsops"
	"github.com/sirupsen/logrus"
)

// StagingSuffix marks transient download-staging folders. A folder carrying
// the suffix protects both itself and its suffix-stripped twin, so an
// in-progress download is never removed out from under the downloader.
const StagingSuffix = ".BDRTEMP"

// SeveredScanner removes on-disk cache folders with no index entry at all.
// Catalog-driven classification cannot see these, and without a content id
// the cache-manager primitive cannot act on them, so they are removed
// directly from the filesystem.
type SeveredScanner struct {
	root     string
	provider cacheindex.Provider
	dryRun   bool
	log      *logrus.Entry
}

func NewSeveredScanner(root string, provider cacheindex.Provider, dryRun bool) *SeveredScanner {
	return &SeveredScanner{
		root:     root,
		provider: provider,
		dryRun:   dryRun,
		log:      logrus.WithField("name", "scan-severed"),
	}
}

func (s *SeveredScanner) Scan(rc *RunContext) error {
	// The full location set, persisted entries included. With no index to
	// consult every folder under the root would look severed, so an index
	// failure must abort this stage rather than degrade it.
	locations, err := s.provider.Locations()
	if err != nil {
		return fmt.Errorf("index locations: %w", err)
	}

	dirs, err := fsops.ListDirs(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Debugf("cache root %s absent, nothing severed", s.root)
			return nil
		}
		return err
	}

	shouldExist := make(map[string]struct{}, len(locations))
	for _, loc := range locations {
		shouldExist[filepath.Clean(loc)] = struct{}{}
	}
	for _, name := range dirs {
		if strings.HasSuffix(name, StagingSuffix) {
			full := filepath.Join(s.root, name)
			shouldExist[full] = struct{}{}
			shouldExist[strings.TrimSuffix(full, StagingSuffix)] = struct{}{}
		}
	}

	for _, name := range dirs {
		full := filepath.Join(s.root, name)
		if _, ok := shouldExist[full]; ok {
			continue
		}

		if s.dryRun {
			s.log.Infof("would remove severed folder %s", full)
			rc.Severed = append(rc.Severed, full)
			continue
		}

		if err := fsops.RemoveTree(full); err != nil {
			rc.Warn(fsops.ClassifyError(full, err))
			continue
		}
		s.log.Infof("removed severed folder %s", full)
		rc.Severed = append(rc.Severed, full)
	}

	return nil
}
