package media

import (
	"time"

	"github.com/jamesWalker55/video-subtitles-explorer/internal/subtitle"
)

// Report summarises how a cue list lines up with its media file.
type Report struct {
	Cues     int
	Inverted []int // indexes of cues that end before they start
	PastEnd  []int // indexes of cues that end after the media does
	LastEnd  time.Duration
}

func (r Report) OK() bool {
	return len(r.Inverted) == 0 && len(r.PastEnd) == 0
}

// CheckCues compares cues against the media duration. A zero duration
// skips the past-end check.
func CheckCues(cues []subtitle.Cue, duration time.Duration) Report {
	report := Report{Cues: len(cues)}
	limit := subtitle.FromStd(duration)
	for i, cue := range cues {
		if cue.Inverted() {
			report.Inverted = append(report.Inverted, i)
		}
		end := cue.End.Std()
		if end > report.LastEnd {
			report.LastEnd = end
		}
		if duration > 0 && cue.End.Compare(limit) > 0 {
			report.PastEnd = append(report.PastEnd, i)
		}
	}
	return report
}
