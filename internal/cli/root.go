package cli

import (
	"fmt"

	"github.com/jamesWalker55/video-subtitles-explorer/internal/config"
	"github.com/jamesWalker55/video-subtitles-explorer/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vse",
	Short: "Find and read WebVTT subtitles for video files",
	Long: `vse locates the WebVTT subtitle file that belongs to a video and parses it
into timed cues for a player UI.

Results are printed as JSON by default so a UI shell can call vse as a
command bridge; use --format text for a readable listing.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)

		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded

		logger.Debugw("Loaded config",
			"output_format", cfg.OutputFormat,
			"export_format", cfg.ExportFormat,
			"probe_timeout", cfg.ProbeTimeout.String(),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default ~/.config/vse/config.toml)")
}
