package cli

import (
	"github.com/Conceptual-Machines/magda-voicer/internal/config"
	"github.com/Conceptual-Machines/magda-voicer/internal/models"
	"github.com/Conceptual-Machines/magda-voicer/internal/services"
	"github.com/spf13/cobra"
)

func newVoiceCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "voice SYMBOL...",
		Short:   "Voice one or more degree symbols",
		Example: "  voicer voice 2 5 1 --key C --top G4\n  voicer voice 2b7 --key Am",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewProgressionService(cfg.DefaultKey, cfg.DefaultTopNote)
			progression, err := svc.VoiceProgression(keyFlag(cmd, cfg), chordRequests(args, topFlag(cmd, cfg)))
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write([]byte(renderProgression(progression) + "\n"))
			return err
		},
	}

	cmd.Flags().StringP("key", "k", "", "key such as C, Eb or Am (default from DEFAULT_KEY)")
	cmd.Flags().StringP("top", "t", "", "exclusive upper bound note (default from DEFAULT_TOP_NOTE)")
	return cmd
}

func chordRequests(symbols []string, top string) []models.ChordRequest {
	reqs := make([]models.ChordRequest, len(symbols))
	for i, s := range symbols {
		reqs[i] = models.ChordRequest{Chord: s, TopNote: top}
	}
	return reqs
}
