package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jamesWalker55/video-subtitles-explorer/internal/subtitle"
)

var (
	colorTiming = lipgloss.Color("6")   // cyan
	colorDim    = lipgloss.Color("240") // gray
	colorWarn   = lipgloss.Color("11")  // bright yellow

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	styleIndex = lipgloss.NewStyle().
			Foreground(colorDim).
			Width(6).
			Align(lipgloss.Right)

	styleTiming = lipgloss.NewStyle().
			Foreground(colorTiming).
			Bold(true)

	styleText = lipgloss.NewStyle().
			PaddingLeft(7)

	styleEmpty = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true).
			PaddingLeft(7)

	styleWarn = lipgloss.NewStyle().
			Foreground(colorWarn)
)

// Cues renders a cue list for the terminal, one block per cue.
func Cues(title string, cues []subtitle.Cue) string {
	var sb strings.Builder

	sb.WriteString(styleHeader.Render(title))
	sb.WriteString(fmt.Sprintf(" (%d cues)\n\n", len(cues)))

	for i, cue := range cues {
		timing := fmt.Sprintf("%s --> %s", cue.Start, cue.End)
		sb.WriteString(styleIndex.Render(fmt.Sprintf("#%d", i+1)))
		sb.WriteString(" ")
		sb.WriteString(styleTiming.Render(timing))
		if cue.Inverted() {
			sb.WriteString(" ")
			sb.WriteString(styleWarn.Render("(ends before it starts)"))
		}
		sb.WriteString("\n")

		if cue.Text == "" {
			sb.WriteString(styleEmpty.Render("(no text)"))
		} else {
			sb.WriteString(styleText.Render(cue.Text))
		}
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// Error renders a message the way the UI shell shows bridge errors.
func Error(msg string) string {
	return styleWarn.Render("error: "+msg) + "\n"
}
