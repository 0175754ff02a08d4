package engine

import "github.com/endpointops/cachereclaim/internal/fsops"

// Status classifies the outcome of one eviction.
type Status string

const (
	StatusDeleted        Status = "Deleted"
	StatusAlreadyDeleted Status = "AlreadyDeleted"
	StatusFailed         Status = "Failed"
	StatusSummary        Status = "Summary"
)

// Record is one audit row for an evicted (or failed) cache item.
type Record struct {
	Name     string
	ID       string
	Location string
	SizeMB   float64
	Status   Status
}

// RunContext carries reconciliation state through the run stages. It is
// created empty per run, mutated by a single writer, and discarded when the
// summary has been built.
type RunContext struct {
	exclusions []string
	Records    []Record
	Severed    []string
	Warnings   []fsops.AccessError
}

// NewRunContext creates an empty reconciliation context.
func NewRunContext() *RunContext {
	return &RunContext{}
}

// Exclude marks a content identifier as still needed for the rest of the
// run. The set is append-only; duplicates are permitted.
func (rc *RunContext) Exclude(contentID string) {
	rc.exclusions = append(rc.exclusions, contentID)
}

// Excluded reports whether a content identifier was ever excluded.
func (rc *RunContext) Excluded(contentID string) bool {
	for _, id := range rc.exclusions {
		if id == contentID {
			return true
		}
	}
	return false
}

// Warn records a filesystem access warning.
func (rc *RunContext) Warn(warnings ...fsops.AccessError) {
	rc.Warnings = append(rc.Warnings, warnings...)
}
