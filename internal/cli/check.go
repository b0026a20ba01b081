package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jamesWalker55/video-subtitles-explorer/internal/bridge"
	"github.com/jamesWalker55/video-subtitles-explorer/internal/config"
	"github.com/jamesWalker55/video-subtitles-explorer/internal/media"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [media_file]",
	Short: "Check that a media file's subtitles fit its duration",
	Long: `Locate and parse the subtitles of a media file, probe the media with
ffprobe, and report cues that end before they start or after the media ends.

Requires ffprobe on PATH.

Examples:
  vse check talk.mp4
  vse check talk.mp4 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

// Inverted and PastEnd hold 1-based cue numbers, as listed by read --format text.
type checkResult struct {
	Subtitle  string  `json:"subtitle"`
	Container string  `json:"container"`
	Duration  float64 `json:"media_duration_seconds"`
	HasVideo  bool    `json:"has_video"`
	HasAudio  bool    `json:"has_audio"`
	Embedded  int     `json:"embedded_subtitle_streams"`
	Cues      int     `json:"cues"`
	Inverted  []int   `json:"inverted,omitempty"`
	PastEnd   []int   `json:"past_end,omitempty"`
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addFormatFlag(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]
	ctx := context.Background()

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	resp := bridge.New(logger).Open(mediaPath)
	if !resp.OK() {
		return errors.New(resp.Error)
	}

	logger.Infow("Probing media",
		"media", mediaPath,
		"timeout", cfg.ProbeTimeout.String(),
	)

	info, err := media.Probe(ctx, mediaPath, cfg.ProbeTimeout.Duration)
	if err != nil {
		return fmt.Errorf("failed to probe media: %w", err)
	}

	report := media.CheckCues(resp.Cues, info.Duration)
	for _, i := range report.Inverted {
		logger.Warnw("Cue ends before it starts",
			"cue", cueNumber(i),
			"start", resp.Cues[i].Start.String(),
			"end", resp.Cues[i].End.String(),
		)
	}
	for _, i := range report.PastEnd {
		logger.Warnw("Cue ends after the media",
			"cue", cueNumber(i),
			"end", resp.Cues[i].End.String(),
			"media_duration", info.Duration.String(),
		)
	}

	if format == config.OutputJSON {
		if err := writeJSON(cmd, newCheckResult(resp.Path, info, report)); err != nil {
			return err
		}
	} else {
		writeCheckText(cmd.OutOrStdout(), resp.Path, info, report)
	}

	if !report.OK() {
		return fmt.Errorf("%d cue problems found",
			len(report.Inverted)+len(report.PastEnd))
	}
	return nil
}

func newCheckResult(subtitlePath string, info *media.Info, report media.Report) checkResult {
	return checkResult{
		Subtitle:  subtitlePath,
		Container: info.FormatName,
		Duration:  info.Duration.Seconds(),
		HasVideo:  info.HasVideo,
		HasAudio:  info.HasAudio,
		Embedded:  info.Subtitles,
		Cues:      report.Cues,
		Inverted:  cueNumbers(report.Inverted),
		PastEnd:   cueNumbers(report.PastEnd),
	}
}

func writeCheckText(out io.Writer, subtitlePath string, info *media.Info, report media.Report) {
	fmt.Fprintf(out, "Subtitle: %s\n", subtitlePath)
	fmt.Fprintf(out, "  Container: %s (video: %t, audio: %t, embedded subtitles: %d)\n",
		info.FormatName, info.HasVideo, info.HasAudio, info.Subtitles)
	fmt.Fprintf(out, "  Media duration: %s\n", info.Duration)
	fmt.Fprintf(out, "  Last cue ends:  %s\n", report.LastEnd)
	fmt.Fprintf(out, "  Cues: %d\n", report.Cues)
	fmt.Fprintf(out, "  Inverted cues: %v\n", cueNumbers(report.Inverted))
	fmt.Fprintf(out, "  Cues past end: %v\n", cueNumbers(report.PastEnd))
}

func cueNumber(index int) int {
	return index + 1
}

// converts report indexes to the numbering used by the text listing
func cueNumbers(indexes []int) []int {
	if len(indexes) == 0 {
		return nil
	}
	numbers := make([]int, len(indexes))
	for i, index := range indexes {
		numbers[i] = cueNumber(index)
	}
	return numbers
}
