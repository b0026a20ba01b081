package subtitle

// represents single timed subtitle entry
type Cue struct {
	Start Duration `json:"start"`
	End   Duration `json:"end"`
	Text  string   `json:"text"`
}

// reports whether the cue ends before it starts
func (c Cue) Inverted() bool {
	return c.End.Compare(c.Start) < 0
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
	FormatASS Format = "ass"
)

// interface for writing cues to files
type Writer interface {
	Encode(cues []Cue) string
	Write(cues []Cue, path string) error
}
