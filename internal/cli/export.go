package cli

import (
	"fmt"
	"os"

	"github.com/Conceptual-Machines/magda-voicer/internal/config"
	"github.com/Conceptual-Machines/magda-voicer/internal/services"
	"github.com/spf13/cobra"
)

func newExportCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "export FILE SYMBOL...",
		Short:   "Write a voiced progression to a Standard MIDI File",
		Example: "  voicer export ii-v-i.mid 2 5 1 --key C --tempo 90",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, symbols := args[0], args[1:]

			svc := services.NewProgressionService(cfg.DefaultKey, cfg.DefaultTopNote)
			progression, err := svc.VoiceProgression(keyFlag(cmd, cfg), chordRequests(symbols, topFlag(cmd, cfg)))
			if err != nil {
				return err
			}

			tempo, _ := cmd.Flags().GetInt("tempo")
			if tempo <= 0 {
				tempo = cfg.TempoBPM
			}
			beats, _ := cmd.Flags().GetFloat64("beats")
			if beats <= 0 {
				beats = cfg.BeatsPerChord
			}

			rhythm, _ := cmd.Flags().GetString("rhythm")
			arpeggiate, _ := cmd.Flags().GetBool("arpeggiate")
			events, _, err := services.ToNoteEvents(progression, services.EventOptions{
				BeatsPerChord: beats,
				Velocity:      cfg.Velocity,
				Rhythm:        rhythm,
				Arpeggiate:    arpeggiate,
			})
			if err != nil {
				return err
			}

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			defer f.Close()

			if err := services.WriteMIDI(f, events, tempo, progression.Key); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderProgression(progression))
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("wrote %d chords to %s", len(progression.Chords), path)))
			return f.Close()
		},
	}

	cmd.Flags().StringP("key", "k", "", "key such as C, Eb or Am (default from DEFAULT_KEY)")
	cmd.Flags().StringP("top", "t", "", "exclusive upper bound note (default from DEFAULT_TOP_NOTE)")
	cmd.Flags().Int("tempo", 0, "tempo in BPM (default from TEMPO_BPM)")
	cmd.Flags().Float64("beats", 0, "beats per chord (default from BEATS_PER_CHORD)")
	cmd.Flags().String("rhythm", "", fmt.Sprintf("comping pattern, one of %v", services.RhythmNames()))
	cmd.Flags().Bool("arpeggiate", false, "play one chord tone per rhythm hit")
	return cmd
}
