package cacheindex

import "errors"

// MemoryProvider is an in-memory index, used by tests and dry runs.
type MemoryProvider struct {
	Items []Entry
	Err   error // returned by every call when set
}

// NewMemoryProvider creates a provider over a fixed entry set.
func NewMemoryProvider(items ...Entry) *MemoryProvider {
	return &MemoryProvider{Items: items}
}

// All returns every entry, persisted included.
func (p *MemoryProvider) All() ([]Entry, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Items, nil
}

// Entries implements Provider.
func (p *MemoryProvider) Entries() ([]Entry, error) {
	if p.Err != nil {
		return nil, p.Err
	}

	var entries []Entry
	for _, e := range p.Items {
		if !e.Persisted {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// Locations implements Provider.
func (p *MemoryProvider) Locations() ([]string, error) {
	if p.Err != nil {
		return nil, p.Err
	}

	locations := make([]string, 0, len(p.Items))
	for _, e := range p.Items {
		locations = append(locations, e.Location)
	}
	return locations, nil
}

// RecordingManager records manager calls without touching the filesystem.
type RecordingManager struct {
	Elements   map[string][]string // contentID -> element IDs
	Enumerated []string
	Deleted    []string
	DeleteErr  error // returned by Delete for every element when set
}

// NewRecordingManager creates a manager stub over a fixed element mapping.
func NewRecordingManager(elements map[string][]string) *RecordingManager {
	if elements == nil {
		elements = map[string][]string{}
	}
	return &RecordingManager{Elements: elements}
}

// Enumerate implements Manager.
func (m *RecordingManager) Enumerate(contentID string) ([]string, error) {
	m.Enumerated = append(m.Enumerated, contentID)
	return m.Elements[contentID], nil
}

// Delete implements Manager.
func (m *RecordingManager) Delete(elementID string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.Deleted = append(m.Deleted, elementID)
	return nil
}

// ErrUnavailable mimics an unreachable index provider in tests.
var ErrUnavailable = errors.New("cache index unavailable")
