package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jamesWalker55/video-subtitles-explorer/internal/subtitle"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [subtitle_file]",
	Short: "Convert a WebVTT file to SRT, ASS or normalised WebVTT",
	Long: `Parse a WebVTT file and write its cues in another format.

Supported output formats: srt, vtt, ass. Without --to the format comes
from the extension of -o, then from export_format in the config.
SRT and VTT timestamps are written with millisecond precision, ASS
timestamps with centisecond precision.

Examples:
  vse export talk.vtt
  vse export talk.vtt -o talk.ass
  vse export talk.vtt --to vtt -o clean/talk.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().
		StringP("to", "t", "", "Output subtitle format (srt, vtt, ass); defaults to the -o extension, then export_format from config")
	exportCmd.Flags().StringP("output", "o", "", "Output file path")
}

func runExport(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	formatStr, _ := cmd.Flags().GetString("to")
	outputPath, _ := cmd.Flags().GetString("output")

	if formatStr == "" && filepath.Ext(outputPath) != "" {
		formatStr = string(subtitle.GetFormatFromExtension(outputPath))
	}
	if formatStr == "" {
		formatStr = cfg.ExportFormat
	}

	var format subtitle.Format
	switch strings.ToLower(formatStr) {
	case "srt":
		format = subtitle.FormatSRT
	case "vtt":
		format = subtitle.FormatVTT
	case "ass":
		format = subtitle.FormatASS
	default:
		return fmt.Errorf("unsupported format %q: use srt, vtt or ass", formatStr)
	}

	if outputPath == "" {
		baseName := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outputPath = baseName + subtitle.GetExtensionForFormat(format)
	}

	absInput, _ := filepath.Abs(inputPath)
	absOutput, _ := filepath.Abs(outputPath)
	if absInput == absOutput {
		return fmt.Errorf("output path %s would overwrite the input; use -o", outputPath)
	}

	logger.Infow("Exporting subtitles",
		"input", inputPath,
		"output", outputPath,
		"format", format,
	)

	cues, err := subtitle.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	writer, err := subtitle.NewWriter(format)
	if err != nil {
		return fmt.Errorf("failed to create subtitle writer: %w", err)
	}

	if err := writer.Write(cues, outputPath); err != nil {
		return fmt.Errorf("failed to write subtitles: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles exported successfully: %s\n", absOutput)
	fmt.Fprintf(cmd.OutOrStdout(), "  Cues: %d\n", len(cues))

	return nil
}
