package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/endpointops/cachereclaim/internal/cacheindex"
	"github.com/endpointops/cachereclaim/internal/config"
	"github.com/endpointops/cachereclaim/internal/fsops"
	"github.com/endpointops/cachereclaim/pkg/size"
	"github.com/spf13/cobra"
)

// EntryStatus holds scan results for a single cache index entry.
type EntryStatus struct {
	ContentID string `json:"content_id"`
	Location  string `json:"location"`
	SizeFmt   string `json:"size"`
	Size      int64  `json:"size_bytes"`
	Persisted bool   `json:"persisted"`
	Missing   bool   `json:"missing"`
}

// StatusOutput holds full status output for JSON serialization.
type StatusOutput struct {
	Total      string        `json:"total"`
	Entries    []EntryStatus `json:"entries"`
	TotalBytes int64         `json:"total_bytes"`
}

// StatusCmd shows the cache index with on-disk sizes.
var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cache index entries and their on-disk sizes",
	RunE:  runStatus,
}

func init() {
	StatusCmd.Flags().Bool("json", false, "Output in JSON format")
}

func runStatus(cmd *cobra.Command, _ []string) error {
	jsonFlag, _ := cmd.Flags().GetBool("json")
	return runStatusWithLoader(config.NewLoader(), jsonFlag)
}

func runStatusWithLoader(loader *config.Loader, jsonOutput bool) error {
	cfg, _, err := loader.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := expandConfigPaths(cfg); err != nil {
		return err
	}

	entries, err := cacheindex.NewFileProvider(cfg.IndexPath).All()
	if err != nil {
		return fmt.Errorf("load index: %w", err)
	}

	statuses := scanEntries(entries)

	if jsonOutput {
		return outputJSON(statuses)
	}
	return outputTable(statuses)
}

func scanEntries(entries []cacheindex.Entry) []EntryStatus {
	statuses := make([]EntryStatus, 0, len(entries))

	for _, e := range entries {
		status := EntryStatus{
			ContentID: e.ContentID,
			Location:  e.Location,
			Persisted: e.Persisted,
		}

		if _, err := os.Stat(e.Location); os.IsNotExist(err) {
			status.Missing = true
			status.SizeFmt = "-"
			statuses = append(statuses, status)
			continue
		}

		scan, err := fsops.TreeSize(e.Location)
		if err != nil {
			status.SizeFmt = "-"
			statuses = append(statuses, status)
			continue
		}

		status.Size = scan.Size
		status.SizeFmt = size.FormatSize(scan.Size)
		statuses = append(statuses, status)
	}
	return statuses
}

func outputJSON(statuses []EntryStatus) error {
	var total int64
	for _, s := range statuses {
		total += s.Size
	}

	out := StatusOutput{
		Entries:    statuses,
		TotalBytes: total,
		Total:      size.FormatSize(total),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func outputTable(statuses []EntryStatus) error {
	rows := make([][]string, 0, len(statuses))
	var total int64

	for _, s := range statuses {
		total += s.Size

		state := okStyle.Render("cached")
		switch {
		case s.Missing:
			state = errorStyle.Render("missing")
		case s.Persisted:
			state = warnStyle.Render("persisted")
		}

		rows = append(rows, []string{s.ContentID, s.Location, s.SizeFmt, state})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("Content ID", "Location", "Size", "State").
		Rows(rows...)

	fmt.Println(t)
	fmt.Println()
	fmt.Println(totalStyle.Render(fmt.Sprintf("Total: %s", size.FormatSize(total))))

	return nil
}
