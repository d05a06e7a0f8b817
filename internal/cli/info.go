package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/justelson/devscope/internal/registry"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info <tool-id>",
	Short: "Show details for one tool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, ok := registry.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown tool %q; run `devscope ls` to see ids", args[0])
		}

		sc, err := newScanner()
		if err != nil {
			return err
		}
		entries := sc.GetCachedOrScan(cmd.Context(), def.Category, cacheMaxAge(loadSettings()))

		var b strings.Builder
		fmt.Fprintf(&b, "# %s\n\n", def.DisplayName)
		if def.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", def.Description)
		}
		fmt.Fprintf(&b, "- **id**: `%s`\n", def.ID)
		fmt.Fprintf(&b, "- **category**: %s\n", def.Category)
		fmt.Fprintf(&b, "- **command**: `%s`\n", def.Command)
		if len(def.AlternateCommands) > 0 {
			fmt.Fprintf(&b, "- **alternates**: `%s`\n", strings.Join(def.AlternateCommands, "`, `"))
		}
		if len(def.UsedFor) > 0 {
			fmt.Fprintf(&b, "- **used for**: %s\n", strings.Join(def.UsedFor, ", "))
		}
		for _, e := range entries {
			if e.ID != def.ID {
				continue
			}
			if e.Installed {
				fmt.Fprintf(&b, "\n**Installed** — version %s via `%s`", orUnknown(e.Version), e.Command)
				if e.Path != "" {
					fmt.Fprintf(&b, " at `%s`", e.Path)
				}
				b.WriteString("\n")
			} else {
				b.WriteString("\n**Not installed**\n")
			}
			if e.LastChecked > 0 {
				fmt.Fprintf(&b, "\nLast checked %s\n", time.UnixMilli(e.LastChecked).Format(time.RFC1123))
			}
		}

		out, err := glamour.Render(b.String(), "auto")
		if err != nil {
			// Fall back to the raw markdown when the renderer cannot
			// detect the terminal profile.
			fmt.Print(b.String())
			return nil
		}
		fmt.Print(out)
		return nil
	},
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
