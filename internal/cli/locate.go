package cli

import (
	"errors"
	"fmt"

	"github.com/jamesWalker55/video-subtitles-explorer/internal/bridge"
	"github.com/jamesWalker55/video-subtitles-explorer/internal/config"
	"github.com/jamesWalker55/video-subtitles-explorer/internal/media"
	"github.com/jamesWalker55/video-subtitles-explorer/internal/render"
	"github.com/spf13/cobra"
)

var locateCmd = &cobra.Command{
	Use:   "locate [media_file]",
	Short: "Find the WebVTT file that belongs to a media file",
	Long: `Find the subtitle file for a media file.

Two candidates are tried in order: the media path with its extension
replaced by .vtt, then the media path with .vtt appended.

Examples:
  vse locate talk.mp4
  vse locate talk.mp4 --format text`,
	Args: cobra.ExactArgs(1),
	RunE: runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)
	addFormatFlag(locateCmd)
}

func runLocate(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	if !media.IsMediaFile(mediaPath) {
		logger.Warnw("Path does not have a known media extension",
			"path", mediaPath,
		)
	}

	resp := bridge.New(logger).LocateSubtitle(mediaPath)

	if format == config.OutputJSON {
		if err := writeJSON(cmd, resp); err != nil {
			return err
		}
	} else if resp.OK() {
		fmt.Fprintln(cmd.OutOrStdout(), resp.Path)
	} else {
		fmt.Fprint(cmd.OutOrStdout(), render.Error(resp.Error))
	}

	if !resp.OK() {
		return errors.New(resp.Error)
	}
	return nil
}
