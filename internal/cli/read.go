package cli

import (
	"github.com/jamesWalker55/video-subtitles-explorer/internal/bridge"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read [subtitle_file]",
	Short: "Parse a WebVTT file into timed cues",
	Long: `Parse a WebVTT subtitle file and print its cues.

The file must start with a WEBVTT line followed by a blank line. Each cue
is a "<start> --> <end>" timing line followed by its text lines.

Examples:
  vse read talk.vtt
  vse read talk.vtt --format text`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
	addFormatFlag(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	logger.Infow("Reading subtitle file", "path", subtitlePath)

	resp := bridge.New(logger).ReadSubtitle(subtitlePath)
	if resp.OK() {
		logger.Infow("Parsed subtitle file", "cues", len(resp.Cues))
	}

	return writeReadResponse(cmd, resp, format)
}
