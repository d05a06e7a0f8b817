package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/justelson/devscope/internal/probe"
	"github.com/justelson/devscope/internal/registry"
)

var (
	agentsJSON   bool
	agentsLatest bool
)

func init() {
	rootCmd.AddCommand(agentsCmd)
	agentsCmd.Flags().BoolVar(&agentsJSON, "json", false, "output JSON instead of a table")
	agentsCmd.Flags().BoolVar(&agentsLatest, "latest", false, "also query the npm registry for the latest published version")
}

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "Fresh sequential scan of AI coding agents",
	Long:  "Probes AI agent CLIs one at a time, never reading the cache. Accuracy matters more than speed for agents, and sequential probing avoids cross-contamination between interactively stateful CLIs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := newScanner()
		if err != nil {
			return err
		}
		entries := sc.ScanAgents(cmd.Context())

		if agentsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}

		for _, e := range entries {
			var line strings.Builder
			line.WriteString(fmt.Sprintf("- %s: ", e.DisplayName))
			if !e.Installed {
				line.WriteString("not installed")
				fmt.Println(line.String())
				continue
			}
			ver := e.Version
			if ver == "" {
				ver = "?"
			}
			line.WriteString(ver)
			if agentsLatest {
				if latest := latestFor(cmd.Context(), e.ID); latest != "" {
					if probe.VersionLess(ver, latest) {
						line.WriteString(fmt.Sprintf(" → %s available", latest))
					} else {
						line.WriteString(fmt.Sprintf(" (latest %s)", latest))
					}
				}
			}
			if e.Command != "" {
				line.WriteString(fmt.Sprintf("  [%s]", e.Command))
			}
			fmt.Println(line.String())
		}
		return nil
	},
}

// latestFor asks the npm registry for the newest published version of the
// agent's package, if it is npm-distributed.
func latestFor(ctx context.Context, id string) string {
	def, ok := registry.Get(id)
	if !ok || def.Package == "" {
		return ""
	}
	lctx, cancel := context.WithTimeout(ctx, 6*time.Second)
	defer cancel()
	latest, _ := probe.NpmLatestVersion(lctx, def.Package)
	return latest
}
