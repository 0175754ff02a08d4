package main

import (
	"fmt"
	"os"

	"github.com/endpointops/cachereclaim/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cachereclaim",
	Short: "Reclaim disk space from the managed content cache",
	Long: `A tool that reconciles the local content cache against the installed
application, run package and applied update catalogs, then evicts
everything unreferenced, no longer needed, or orphaned.`,
}

func init() {
	rootCmd.AddCommand(cli.RunCmd)
	rootCmd.AddCommand(cli.StatusCmd)
	rootCmd.AddCommand(cli.ConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
