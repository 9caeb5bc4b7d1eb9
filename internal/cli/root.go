package cli

import (
	"github.com/Conceptual-Machines/magda-voicer/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the voicer command tree
func NewRootCmd(version string) *cobra.Command {
	cfg := &config.Config{}

	root := &cobra.Command{
		Use:          "voicer",
		Short:        "Voice scale-degree chord symbols into concrete notes",
		Long:         `voicer turns degree symbols like "2", "5" or "2b7" into four-note voicings below a top note.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env is optional for the CLI
			_ = godotenv.Load()
			*cfg = *config.Load()
		},
	}

	root.AddCommand(
		newVoiceCmd(cfg),
		newDiatonicCmd(cfg),
		newExportCmd(cfg),
		newServeCmd(cfg, version),
	)
	return root
}

// Execute runs the CLI and exits non-zero on error
func Execute(version string) {
	cobra.CheckErr(NewRootCmd(version).Execute())
}

// keyFlag falls back to the configured default key
func keyFlag(cmd *cobra.Command, cfg *config.Config) string {
	key, _ := cmd.Flags().GetString("key")
	if key == "" {
		return cfg.DefaultKey
	}
	return key
}

// topFlag falls back to the configured default top note
func topFlag(cmd *cobra.Command, cfg *config.Config) string {
	top, _ := cmd.Flags().GetString("top")
	if top == "" {
		return cfg.DefaultTopNote
	}
	return top
}
