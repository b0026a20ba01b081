package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// media file information reported by ffprobe
type Info struct {
	Path       string
	FormatName string
	Duration   time.Duration
	HasVideo   bool
	HasAudio   bool
	Subtitles  int // embedded subtitle streams
}

// probes a media file with ffprobe. The timeout is shortened to the
// context deadline when that comes first.
func Probe(ctx context.Context, path string, timeout time.Duration) (*Info, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("media file not found: %s", path)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	out, err := ffmpeg.ProbeWithTimeout(path, timeout, ffmpeg.KwArgs{})
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	info, err := parseProbe(out)
	if err != nil {
		return nil, err
	}
	info.Path = path
	return info, nil
}

// extracts Info from ffprobe's -show_format -show_streams JSON
func parseProbe(out string) (*Info, error) {
	if !gjson.Valid(out) {
		return nil, fmt.Errorf("failed to parse ffprobe output: invalid JSON")
	}

	duration := gjson.Get(out, "format.duration")
	if !duration.Exists() {
		return nil, fmt.Errorf("failed to parse ffprobe output: no format duration")
	}
	seconds := duration.Float()
	if seconds < 0 {
		return nil, fmt.Errorf("failed to parse duration: negative value %v", seconds)
	}

	return &Info{
		FormatName: gjson.Get(out, "format.format_name").String(),
		Duration:   time.Duration(seconds * float64(time.Second)),
		HasVideo:   gjson.Get(out, `streams.#(codec_type=="video")`).Exists(),
		HasAudio:   gjson.Get(out, `streams.#(codec_type=="audio")`).Exists(),
		Subtitles:  len(gjson.Get(out, `streams.#(codec_type=="subtitle")#`).Array()),
	}, nil
}

// checks if the file is a video based on extension
func IsVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	videoExts := map[string]bool{
		".mp4":  true,
		".mkv":  true,
		".avi":  true,
		".mov":  true,
		".wmv":  true,
		".flv":  true,
		".webm": true,
		".m4v":  true,
		".mpeg": true,
		".mpg":  true,
		".3gp":  true,
	}
	return videoExts[ext]
}

// checks if the file is an audio file based on extension
func IsAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	audioExts := map[string]bool{
		".mp3":  true,
		".wav":  true,
		".aac":  true,
		".flac": true,
		".ogg":  true,
		".m4a":  true,
		".wma":  true,
		".aiff": true,
	}
	return audioExts[ext]
}

// checks if the file is either audio or video
func IsMediaFile(path string) bool {
	return IsAudioFile(path) || IsVideoFile(path)
}
