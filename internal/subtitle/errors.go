package subtitle

import (
	"errors"
	"fmt"
)

var (
	// missing or malformed WEBVTT header, or no blank line after it
	ErrInvalidHeader = errors.New("invalid WebVTT header")
	// malformed timing line or timestamp token
	ErrInvalidCueTime = errors.New("invalid cue time")
)

// ParseError records the 1-based line on which parsing stopped.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
