package cli

import (
	"github.com/jamesWalker55/video-subtitles-explorer/internal/bridge"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open [media_file]",
	Short: "Locate and read the subtitles of a media file",
	Long: `Locate the WebVTT file for a media file and print its cues.

This is what a player runs when a video is opened: "locate" followed by
"read" on the result.

Examples:
  vse open talk.mp4
  vse open talk.mp4 -f text`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
	addFormatFlag(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	logger.Infow("Opening subtitles", "media", mediaPath)

	resp := bridge.New(logger).Open(mediaPath)
	if resp.OK() {
		logger.Infow("Parsed subtitle file",
			"path", resp.Path,
			"cues", len(resp.Cues),
		)
	}

	return writeReadResponse(cmd, resp, format)
}
