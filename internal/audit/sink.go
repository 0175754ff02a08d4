// Package audit persists run outcomes: the delimited record log, the
// structured system-log entry, the sentinel marker consumed by the external
// detection mechanism, and the downstream inventory-refresh trigger.
package audit

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/endpointops/cachereclaim/internal/engine"
	"github.com/endpointops/cachereclaim/pkg/size"
	"github.com/sirupsen/logrus"
)

// Sink appends run summaries to the delimited audit log. When the existing
// log exceeds maxSize bytes it is truncated before appending, so the trail
// never grows unbounded.
type Sink struct {
	path    string
	maxSize int64
	log     *logrus.Entry
}

// NewSink creates a sink writing to path. maxSize 0 disables truncation.
func NewSink(path string, maxSize int64) *Sink {
	return &Sink{
		path:    path,
		maxSize: maxSize,
		log:     logrus.WithField("name", "audit"),
	}
}

// Append writes every record of the summary plus its synthetic total row.
func (s *Sink) Append(summary engine.Summary) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create audit dir: %w", err)
	}

	if info, err := os.Stat(s.path); err == nil && s.maxSize > 0 && info.Size() > s.maxSize {
		s.log.Infof("audit log %s over %d bytes, truncating", s.path, s.maxSize)
		if err := os.Truncate(s.path, 0); err != nil {
			return fmt.Errorf("truncate audit log: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, r := range summary.Records {
		row := []string{r.Name, r.ID, r.Location, size.FormatMB(r.SizeMB), string(r.Status)}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write audit row: %w", err)
		}
	}

	// The total cell uses the summary's own rendering so empty runs read
	// "none", not "0.00".
	sr := summary.SummaryRecord()
	if err := w.Write([]string{sr.Name, sr.ID, sr.Location, summary.Total.String(), string(sr.Status)}); err != nil {
		return fmt.Errorf("write audit summary row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush audit log: %w", err)
	}
	return nil
}

// Marker is the sentinel directory an external detection mechanism checks
// for a completed run.
type Marker struct {
	path string
}

func NewMarker(path string) Marker {
	return Marker{path: path}
}

// Clear removes a stale marker at run start.
func (m Marker) Clear() error {
	if m.path == "" {
		return nil
	}
	if err := os.RemoveAll(m.path); err != nil {
		return fmt.Errorf("clear marker: %w", err)
	}
	return nil
}

// Create places the marker after a successful run.
func (m Marker) Create() error {
	if m.path == "" {
		return nil
	}
	if err := os.MkdirAll(m.path, 0o750); err != nil {
		return fmt.Errorf("create marker: %w", err)
	}
	return nil
}

// Recorder ties the audit surfaces together: the delimited log, the
// structured system-log entry, and the sentinel marker. Both log surfaces
// receive the identical summary payload.
type Recorder struct {
	sink   *Sink
	marker Marker
	log    *logrus.Entry
}

func NewRecorder(sink *Sink, marker Marker) *Recorder {
	return &Recorder{
		sink:   sink,
		marker: marker,
		log:    logrus.WithField("name", "audit"),
	}
}

// Persist writes the summary everywhere it needs to go.
func (r *Recorder) Persist(summary engine.Summary) error {
	if err := r.sink.Append(summary); err != nil {
		return err
	}

	r.log.WithFields(logrus.Fields{
		"deleted":        summary.Deleted(),
		"failed":         summary.Failed(),
		"severed":        len(summary.Severed),
		"reclaimed_mb":   summary.Total.String(),
		"failure_policy": summary.Policy,
		"timestamp":      summary.Timestamp,
	}).Info("cache reclamation run recorded")

	return r.marker.Create()
}
