package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/endpointops/cachereclaim/internal/audit"
	"github.com/endpointops/cachereclaim/internal/cacheindex"
	"github.com/endpointops/cachereclaim/internal/catalog"
	"github.com/endpointops/cachereclaim/internal/config"
	"github.com/endpointops/cachereclaim/internal/engine"
	"github.com/endpointops/cachereclaim/pkg/size"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RunCmd reconciles the content cache and evicts unneeded items.
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Reconcile the content cache and evict unneeded items",
	Long: `Reconcile the local cache index against the application, package and
update catalogs, evict unreferenced and orphaned content, and remove
severed on-disk folders.`,
	RunE: runRun,
}

func init() {
	RunCmd.Flags().Bool("dry-run", false, "Preview without deleting")
	RunCmd.Flags().Bool("force", false, "Skip confirmation prompt")
	RunCmd.Flags().Bool("quiet", false, "Minimal output")
	RunCmd.Flags().Bool("debug", false, "Verbose engine logging")
}

func runRun(cmd *cobra.Command, _ []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	force, _ := cmd.Flags().GetBool("force")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	return runRunWithLoader(config.NewLoader(), dryRun, force, quiet, debug, os.Stdin)
}

func runRunWithLoader(loader *config.Loader, dryRun, force, quiet, debug bool, stdin *os.File) error {
	setupLogging(quiet, debug)

	cfg, _, err := loader.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := expandConfigPaths(cfg); err != nil {
		return err
	}

	if !force && !dryRun {
		if !confirmRun(cfg.CacheRoot, stdin) {
			fmt.Println("Aborted")
			return nil
		}
	}

	index := cacheindex.NewFileProvider(cfg.IndexPath)
	catalogs := catalog.NewFileProviders(cfg.Catalogs.Applications, cfg.Catalogs.Packages, cfg.Catalogs.Updates)
	manager := cacheindex.NewFSManager(index)
	marker := audit.NewMarker(cfg.Audit.MarkerPath)

	if !dryRun {
		if err := marker.Clear(); err != nil {
			return err
		}
	}

	eng := engine.New(index, catalogs, manager, engine.Options{
		CacheRoot: cfg.CacheRoot,
		Policy:    cfg.FailurePolicy,
		DryRun:    dryRun,
	})

	summary, err := eng.Run()
	if err != nil {
		return fmt.Errorf("reconciliation: %w", err)
	}

	if !dryRun {
		recorder := audit.NewRecorder(audit.NewSink(cfg.Audit.LogPath, cfg.MaxLogSizeBytes()), marker)
		if err := recorder.Persist(summary); err != nil {
			return fmt.Errorf("persist audit: %w", err)
		}

		if err := audit.NewTrigger(cfg.RefreshCmd).Fire(); err != nil {
			// The refresh is best-effort; the run itself succeeded.
			logrus.Warnf("inventory refresh not fired: %v", err)
		}
	}

	if !quiet {
		renderSummary(summary, dryRun)
	} else {
		fmt.Println(summary.Total.String())
	}
	return nil
}

func setupLogging(quiet, debug bool) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	switch {
	case debug:
		logrus.SetLevel(logrus.DebugLevel)
	case quiet:
		logrus.SetLevel(logrus.WarnLevel)
	}
}

func expandConfigPaths(cfg *config.Config) error {
	for _, p := range []*string{
		&cfg.CacheRoot, &cfg.IndexPath,
		&cfg.Catalogs.Applications, &cfg.Catalogs.Packages, &cfg.Catalogs.Updates,
		&cfg.Audit.LogPath, &cfg.Audit.MarkerPath,
	} {
		expanded, err := config.ExpandTilde(*p)
		if err != nil {
			return fmt.Errorf("expand path %q: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}

func confirmRun(cacheRoot string, stdin *os.File) bool {
	fmt.Printf("Reconcile cache at %s and evict unneeded content? [y/N]: ", cacheRoot)

	reader := bufio.NewReader(stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))

	return response == "y" || response == "yes"
}

func renderSummary(summary engine.Summary, dryRun bool) {
	if dryRun {
		fmt.Println(dimStyle.Render("[dry-run] no changes were made"))
	}

	if len(summary.Records) > 0 {
		rows := make([][]string, 0, len(summary.Records))
		for _, r := range summary.Records {
			status := okStyle.Render(string(r.Status))
			if r.Status == engine.StatusFailed {
				status = errorStyle.Render(string(r.Status))
			}
			rows = append(rows, []string{r.Name, r.ID, size.FormatMB(r.SizeMB), status})
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
			Headers("Item", "Content ID", "Size (MB)", "Status").
			Rows(rows...)

		fmt.Println(t)
	}

	for _, folder := range summary.Severed {
		fmt.Println(dimStyle.Render("severed: " + folder))
	}
	if n := len(summary.Warnings); n > 0 {
		fmt.Println(warnStyle.Render(fmt.Sprintf("%d access warnings, see log", n)))
	}

	fmt.Println()
	fmt.Println(totalStyle.Render("Reclaimed (MB): " + summary.Total.String()))
}
