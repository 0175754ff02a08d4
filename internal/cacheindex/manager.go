package cacheindex

import (
	"fmt"

	"github.com/endpointops/cachereclaim/internal/fsops"
	"github.com/sirupsen/logrus"
)

// Manager is the cache-manager primitive: the only mechanism for evicting
// index-known entries. Enumerate resolves a content identifier to its native
// cache elements; Delete removes one element.
type Manager interface {
	Enumerate(contentID string) ([]string, error)
	Delete(elementID string) error
}

// FSManager binds the manager primitive to the filesystem: cache elements
// are the indexed locations of a content identifier, deletion is recursive
// folder removal.
type FSManager struct {
	provider Provider
	log      *logrus.Entry
}

// NewFSManager creates a filesystem-backed manager over the given index.
func NewFSManager(provider Provider) *FSManager {
	return &FSManager{
		provider: provider,
		log:      logrus.WithField("name", "cache-manager"),
	}
}

// Enumerate implements Manager. Element identifiers are location paths.
func (m *FSManager) Enumerate(contentID string) ([]string, error) {
	entries, err := m.provider.Entries()
	if err != nil {
		return nil, fmt.Errorf("enumerate %s: %w", contentID, err)
	}

	var elements []string
	for _, e := range entries {
		if e.ContentID == contentID {
			elements = append(elements, e.Location)
		}
	}
	return elements, nil
}

// Delete implements Manager.
func (m *FSManager) Delete(elementID string) error {
	m.log.Debugf("deleting cache element %s", elementID)
	return fsops.RemoveTree(elementID)
}
