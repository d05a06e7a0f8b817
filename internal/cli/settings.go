package cli

import (
	"github.com/spf13/cobra"

	"github.com/justelson/devscope/internal/settings"
)

func init() {
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Configure default scan categories and concurrency",
	RunE: func(cmd *cobra.Command, args []string) error {
		return settings.RunForm()
	},
}
