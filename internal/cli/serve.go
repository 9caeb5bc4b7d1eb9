package cli

import (
	"github.com/Conceptual-Machines/magda-voicer/internal/config"
	"github.com/Conceptual-Machines/magda-voicer/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(cfg *config.Config, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port, _ := cmd.Flags().GetString("port"); port != "" {
				cfg.Port = port
			}
			return server.Run(cfg, version)
		},
	}

	cmd.Flags().StringP("port", "p", "", "listen port (default from PORT)")
	return cmd
}
