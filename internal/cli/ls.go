package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/justelson/devscope/internal/cache"
	"github.com/justelson/devscope/internal/registry"
)

var (
	lsJSON   bool
	lsMaxAge time.Duration
)

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().BoolVar(&lsJSON, "json", false, "output JSON instead of a table")
	lsCmd.Flags().DurationVar(&lsMaxAge, "max-age", 0, "serve cached results no older than this (default from settings)")
}

var lsCmd = &cobra.Command{
	Use:   "ls [category...]",
	Short: "List tool status, served from cache when fresh",
	Long:  "Shows the last-known status of every tool, rescanning only categories whose cached results are older than the staleness window.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := newScanner()
		if err != nil {
			return err
		}
		prefs := loadSettings()
		maxAge := lsMaxAge
		if maxAge <= 0 {
			maxAge = cacheMaxAge(prefs)
		}

		cats := prefs.ScanCategories()
		if len(args) > 0 {
			cats = cats[:0]
			for _, a := range args {
				cat, err := registry.ParseCategory(a)
				if err != nil {
					return err
				}
				cats = append(cats, cat)
			}
		}

		var entries []cache.Entry
		for _, cat := range cats {
			entries = append(entries, sc.GetCachedOrScan(cmd.Context(), cat, maxAge)...)
		}

		if lsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}
		fmt.Print(renderTable(toolHeaders, toolRows(entries)))
		if last := sc.Store().LastFullScan(); !last.IsZero() {
			fmt.Printf("\nlast full scan: %s\n", last.Format(time.RFC1123))
		}
		return nil
	},
}
