// Package bridge exposes the locate and read operations to a UI shell.
// Responses carry errors as display strings instead of Go error values,
// so they can be serialised to JSON as-is.
package bridge

import (
	"errors"
	"fmt"

	"github.com/jamesWalker55/video-subtitles-explorer/internal/locator"
	"github.com/jamesWalker55/video-subtitles-explorer/internal/logging"
	"github.com/jamesWalker55/video-subtitles-explorer/internal/subtitle"
)

type LocateResponse struct {
	Path  string `json:"path,omitempty"`
	Error string `json:"error,omitempty"`
}

type ReadResponse struct {
	Path  string         `json:"path,omitempty"`
	Cues  []subtitle.Cue `json:"cues"`
	Error string         `json:"error,omitempty"`
}

func (r LocateResponse) OK() bool { return r.Error == "" }
func (r ReadResponse) OK() bool   { return r.Error == "" }

type Bridge struct {
	logger *logging.Logger
}

func New(logger *logging.Logger) *Bridge {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Bridge{logger: logger}
}

// LocateSubtitle resolves the sibling .vtt file of a media file.
func (b *Bridge) LocateSubtitle(mediaPath string) LocateResponse {
	path, err := locator.Locate(mediaPath)
	if err != nil {
		b.logger.Debugw("Subtitle lookup failed", "media", mediaPath, "error", err)
		return LocateResponse{Error: Message(err)}
	}

	b.logger.Debugw("Located subtitle", "media", mediaPath, "subtitle", path)
	return LocateResponse{Path: path}
}

// ReadSubtitle reads and parses the WebVTT file at path.
func (b *Bridge) ReadSubtitle(path string) ReadResponse {
	cues, err := subtitle.ParseFile(path)
	if err != nil {
		b.logger.Debugw("Subtitle read failed", "path", path, "error", err)
		return ReadResponse{Path: path, Cues: []subtitle.Cue{}, Error: Message(err)}
	}

	b.logger.Debugw("Parsed subtitle", "path", path, "cues", len(cues))
	return ReadResponse{Path: path, Cues: cues}
}

// Open locates the subtitle for a media file and reads it.
func (b *Bridge) Open(mediaPath string) ReadResponse {
	located := b.LocateSubtitle(mediaPath)
	if !located.OK() {
		return ReadResponse{Cues: []subtitle.Cue{}, Error: located.Error}
	}
	return b.ReadSubtitle(located.Path)
}

// Message turns an error from the locator or parser into display text.
func Message(err error) string {
	var parseErr *subtitle.ParseError
	line := ""
	if errors.As(err, &parseErr) && parseErr.Line > 0 {
		line = fmt.Sprintf(" (line %d)", parseErr.Line)
	}

	switch {
	case errors.Is(err, locator.ErrInvalidPath):
		return "invalid media path"
	case errors.Is(err, locator.ErrNotFound):
		return "no subtitle file found"
	case errors.Is(err, subtitle.ErrInvalidHeader):
		return "invalid WebVTT header" + line
	case errors.Is(err, subtitle.ErrInvalidCueTime):
		return "invalid cue timing" + line
	default:
		cause := err
		if inner := errors.Unwrap(err); inner != nil {
			cause = inner
		}
		return fmt.Sprintf("failed to read subtitle file: %v", cause)
	}
}
