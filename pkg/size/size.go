package size

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

const bytesPerMB = 1024 * 1024

// FormatSize formats bytes as human-readable string.
func FormatSize(bytes int64) string {
	if bytes < 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(bytes))
}

// MB converts a byte count to mebibytes.
func MB(bytes int64) float64 {
	return float64(bytes) / bytesPerMB
}

// FormatMB renders a mebibyte value with fixed two-decimal precision.
// Audit rows use this form so sizes stay comparable across runs.
func FormatMB(mb float64) string {
	return fmt.Sprintf("%.2f", mb)
}
