package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SubRip format
type SRTWriter struct{}

// WebVTT format
type VTTWriter struct{}

// Advanced SubStation Alpha format
type ASSWriter struct {
	Title    string
	FontName string
	FontSize int
}

func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatSRT:
		return &SRTWriter{}, nil
	case FormatVTT:
		return &VTTWriter{}, nil
	case FormatASS:
		return &ASSWriter{
			Title:    "vse export",
			FontName: "Arial",
			FontSize: 20,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// renders cues as SRT text
func (w *SRTWriter) Encode(cues []Cue) string {
	var sb strings.Builder
	for i, cue := range cues {
		// index (1-based)
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatSRTTime(cue.Start),
			formatSRTTime(cue.End)))

		sb.WriteString(cue.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// writes the cues to an SRT file
func (w *SRTWriter) Write(cues []Cue, path string) error {
	return writeFile(path, w.Encode(cues))
}

// renders cues as WebVTT text that ParseString reads back
func (w *VTTWriter) Encode(cues []Cue) string {
	var sb strings.Builder

	sb.WriteString(vttHeader)
	sb.WriteString("\n\n")

	for _, cue := range cues {
		// timestamps: 00:00:00.000 --> 00:00:00.000
		sb.WriteString(formatVTTTime(cue.Start))
		sb.WriteString(timingArrow)
		sb.WriteString(formatVTTTime(cue.End))
		sb.WriteString("\n")

		// a blank line inside the text would end the cue early
		sb.WriteString(dropBlankLines(cue.Text))
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// writes the cues to a VTT file
func (w *VTTWriter) Write(cues []Cue, path string) error {
	return writeFile(path, w.Encode(cues))
}

// renders cues as an ASS script with a single Default style
func (w *ASSWriter) Encode(cues []Cue) string {
	var sb strings.Builder

	// script info section
	sb.WriteString("[Script Info]\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", w.Title))
	sb.WriteString("ScriptType: v4.00+\n")
	sb.WriteString("Collisions: Normal\n")
	sb.WriteString("PlayDepth: 0\n\n")

	// v4+ styles section
	sb.WriteString("[V4+ Styles]\n")
	sb.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	sb.WriteString(fmt.Sprintf("Style: Default,%s,%d,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,2,2,10,10,10,1\n\n",
		w.FontName, w.FontSize))

	// events section
	sb.WriteString("[Events]\n")
	sb.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")

	for _, cue := range cues {
		sb.WriteString(fmt.Sprintf("Dialogue: 0,%s,%s,Default,,0,0,0,,%s\n",
			formatASSTime(cue.Start),
			formatASSTime(cue.End),
			escapeASSText(cue.Text)))
	}

	return sb.String()
}

// writes the cues to an ASS file
func (w *ASSWriter) Write(cues []Cue, path string) error {
	return writeFile(path, w.Encode(cues))
}

func formatSRTTime(d Duration) string {
	return d.format(',')
}

func formatVTTTime(d Duration) string {
	return d.format('.')
}

// H:MM:SS.cc, centiseconds truncated
func formatASSTime(d Duration) string {
	hours := d.Seconds / 3600
	minutes := (d.Seconds / 60) % 60
	seconds := d.Seconds % 60
	centis := d.Nanos / 10_000_000

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, centis)
}

// a Dialogue line ends at the newline, so breaks become \N
func escapeASSText(text string) string {
	return strings.ReplaceAll(text, "\n", "\\N")
}

func dropBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func writeFile(path, content string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// subtitle format based on file extension
func GetFormatFromExtension(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt":
		return FormatSRT
	case ".vtt":
		return FormatVTT
	case ".ass":
		return FormatASS
	default:
		return FormatVTT
	}
}

// file extension for a format
func GetExtensionForFormat(format Format) string {
	switch format {
	case FormatSRT:
		return ".srt"
	case FormatVTT:
		return ".vtt"
	case FormatASS:
		return ".ass"
	default:
		return ".vtt"
	}
}
