package engine

import (
	"sort"
	"time"

	"github.com/endpointops/cachereclaim/internal/fsops"
	"github.com/endpointops/cachereclaim/pkg/size"
)

// Total is the reclaimed-space sum for one run. None distinguishes "nothing
// was deleted" from a numeric total, so empty runs stay visually distinct
// in the audit trail.
type Total struct {
	None bool
	MB   float64
}

func (t Total) String() string {
	if t.None {
		return "none"
	}
	return size.FormatMB(t.MB)
}

// Summary is the aggregated outcome of one reconciliation run.
type Summary struct {
	Records   []Record // sorted descending by size; no synthetic rows
	Total     Total
	Timestamp time.Time
	Policy    string
	Severed   []string
	Warnings  []fsops.AccessError
}

// Deleted counts records with Deleted status.
func (s Summary) Deleted() int {
	n := 0
	for _, r := range s.Records {
		if r.Status == StatusDeleted {
			n++
		}
	}
	return n
}

// Failed counts records with Failed status.
func (s Summary) Failed() int {
	n := 0
	for _, r := range s.Records {
		if r.Status == StatusFailed {
			n++
		}
	}
	return n
}

// SummaryRecord builds the synthetic record appended to the audit trail:
// the run total and timestamp, plus the failure policy that was active.
func (s Summary) SummaryRecord() Record {
	return Record{
		Name:     "Total Reclaimed (MB)",
		ID:       s.Timestamp.Format(time.RFC3339),
		Location: "policy=" + s.Policy,
		SizeMB:   s.Total.MB,
		Status:   StatusSummary,
	}
}

// BuildSummary sorts the run's records descending by size and computes the
// reclaimed total over Deleted records.
func BuildSummary(rc *RunContext, now time.Time, policy string) Summary {
	records := make([]Record, len(rc.Records))
	copy(records, rc.Records)

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SizeMB > records[j].SizeMB
	})

	total := Total{None: true}
	for _, r := range records {
		if r.Status != StatusDeleted {
			continue
		}
		total.None = false
		total.MB += r.SizeMB
	}

	return Summary{
		Records:   records,
		Total:     total,
		Timestamp: now,
		Policy:    policy,
		Severed:   rc.Severed,
		Warnings:  rc.Warnings,
	}
}
