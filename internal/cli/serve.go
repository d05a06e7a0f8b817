package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/justelson/devscope/internal/server"
	"github.com/justelson/devscope/internal/system"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "127.0.0.1:8990", "address to bind (host:port)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local scanner API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		sc, err := newScanner()
		if err != nil {
			return err
		}
		srv := &server.Server{Addr: addr, Scanner: sc, Settings: loadSettings()}

		// Handle Ctrl+C
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		system.Logger.Info("starting api", "url", "http://"+addr+"/api/tools")
		return srv.Start(ctx)
	},
}
