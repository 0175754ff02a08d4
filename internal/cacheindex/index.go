package cacheindex

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry is one cache index row: a content identifier mapped to its on-disk
// location. Persisted entries are never candidates for eviction.
type Entry struct {
	ContentID string `yaml:"content_id"`
	Location  string `yaml:"location"`
	Persisted bool   `yaml:"persisted"`
}

// Provider queries the local cache index.
type Provider interface {
	// Entries returns index rows not flagged persisted, in index order.
	Entries() ([]Entry, error)

	// Locations returns the on-disk location of every index row, persisted
	// included. The severed-folder scan needs the full set: a persisted
	// folder absent from it would be removed as severed.
	Locations() ([]string, error)
}

// FileProvider reads the index from a yaml snapshot file.
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider backed by the snapshot at path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) load() ([]Entry, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", p.path, err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse index %s: %w", p.path, err)
	}

	return entries, nil
}

// All returns every index row, persisted included. The status surface uses
// this; the reconciliation core never does.
func (p *FileProvider) All() ([]Entry, error) {
	return p.load()
}

// Entries implements Provider.
func (p *FileProvider) Entries() ([]Entry, error) {
	all, err := p.load()
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, e := range all {
		if !e.Persisted {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// Locations implements Provider.
func (p *FileProvider) Locations() ([]string, error) {
	all, err := p.load()
	if err != nil {
		return nil, err
	}

	locations := make([]string, 0, len(all))
	for _, e := range all {
		locations = append(locations, e.Location)
	}
	return locations, nil
}
