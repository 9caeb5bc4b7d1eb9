package cli

import (
	"fmt"

	"github.com/Conceptual-Machines/magda-voicer/internal/config"
	"github.com/Conceptual-Machines/magda-voicer/internal/services"
	"github.com/spf13/cobra"
)

func newDiatonicCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diatonic",
		Short: "List the seven diatonic seventh chords of a key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewProgressionService(cfg.DefaultKey, cfg.DefaultTopNote)
			overview, err := svc.Diatonic(keyFlag(cmd, cfg))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderKeyOverview(overview))
			return err
		},
	}

	cmd.Flags().StringP("key", "k", "", "key such as C, Eb or Am (default from DEFAULT_KEY)")
	return cmd
}
