package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/justelson/devscope/internal/gitscan"
)

var (
	reposJSON  bool
	reposDepth int
)

func init() {
	rootCmd.AddCommand(reposCmd)
	reposCmd.Flags().BoolVar(&reposJSON, "json", false, "output JSON instead of a table")
	reposCmd.Flags().IntVar(&reposDepth, "depth", 3, "maximum directory depth to search for repositories")
}

var reposCmd = &cobra.Command{
	Use:   "repos [dir]",
	Short: "Find and inspect Git repositories under a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		infos, err := gitscan.InspectAll(cmd.Context(), root, reposDepth)
		if err != nil {
			return err
		}

		if reposJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(infos)
		}

		if len(infos) == 0 {
			fmt.Printf("no Git repositories found under %s (depth %d)\n", root, reposDepth)
			return nil
		}
		rows := make([][]string, 0, len(infos))
		for _, info := range infos {
			state := "clean"
			if info.Dirty {
				state = "dirty"
			}
			last := "-"
			if !info.LastAt.IsZero() {
				last = info.LastAt.Format(time.DateOnly)
			}
			rows = append(rows, []string{info.Path, info.Branch, info.ShortSHA, state, last})
		}
		fmt.Print(renderTable([]string{"PATH", "BRANCH", "HEAD", "STATE", "LAST COMMIT"}, rows))
		return nil
	},
}
