package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/justelson/devscope/internal/cache"
	"github.com/justelson/devscope/internal/registry"
	"github.com/justelson/devscope/internal/scan"
	"github.com/justelson/devscope/internal/system"
)

var (
	scanJSON        bool
	scanConcurrency int
)

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output JSON instead of a table")
	scanCmd.Flags().IntVar(&scanConcurrency, "concurrency", 0, "max probes in flight per batch (default from settings)")
}

var scanCmd = &cobra.Command{
	Use:   "scan [category...]",
	Short: "Probe the workstation for installed developer tools",
	Long:  "Runs a fresh scan and updates the cache. With no arguments every category is scanned; pass category names (e.g. language, ai_agent) to narrow the scan.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := newScanner()
		if err != nil {
			return err
		}
		if scanConcurrency > 0 {
			sc.Concurrency = scanConcurrency
		}

		var entries []cache.Entry
		if len(args) == 0 {
			out, err := sc.ScanAll(cmd.Context())
			if err != nil {
				system.Logger.Warn("tool cache save failed", "err", err)
			}
			for _, cat := range registry.Categories() {
				entries = append(entries, out[cat]...)
			}
		} else {
			cats := make([]registry.Category, 0, len(args))
			for _, a := range args {
				cat, err := registry.ParseCategory(a)
				if err != nil {
					return err
				}
				cats = append(cats, cat)
			}
			for _, cat := range cats {
				entries = append(entries, sc.ScanCategory(cmd.Context(), cat, progressLogger(cat))...)
			}
			if err := sc.Store().Save(); err != nil {
				system.Logger.Warn("tool cache save failed", "err", err)
			}
		}

		if scanJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}
		fmt.Print(renderTable(toolHeaders, toolRows(entries)))
		fmt.Printf("\n%d tool(s), %d installed\n", len(entries), countInstalled(entries))
		return nil
	},
}

func progressLogger(cat registry.Category) scan.ProgressFunc {
	if scanJSON {
		return nil
	}
	return func(done, total int, _ []string) {
		system.Logger.Info("probing", "category", cat, "done", done, "total", total)
	}
}

func countInstalled(entries []cache.Entry) int {
	n := 0
	for _, e := range entries {
		if e.Installed {
			n++
		}
	}
	return n
}
