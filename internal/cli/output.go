package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jamesWalker55/video-subtitles-explorer/internal/bridge"
	"github.com/jamesWalker55/video-subtitles-explorer/internal/config"
	"github.com/jamesWalker55/video-subtitles-explorer/internal/render"
	"github.com/spf13/cobra"
)

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().
		StringP("format", "f", "", "Output format (json, text); defaults to output_format from config")
}

// output format from --format, falling back to the config file
func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	if !cmd.Flags().Changed("format") || format == "" {
		format = cfg.OutputFormat
	}

	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case config.OutputJSON, config.OutputText:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use json or text", format)
	}
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// prints a read response and turns its error message into a command error
func writeReadResponse(cmd *cobra.Command, resp bridge.ReadResponse, format string) error {
	if format == config.OutputJSON {
		if err := writeJSON(cmd, resp); err != nil {
			return err
		}
	} else if resp.OK() {
		fmt.Fprint(cmd.OutOrStdout(), render.Cues(resp.Path, resp.Cues))
	} else {
		fmt.Fprint(cmd.OutOrStdout(), render.Error(resp.Error))
	}

	if !resp.OK() {
		return errors.New(resp.Error)
	}
	return nil
}
